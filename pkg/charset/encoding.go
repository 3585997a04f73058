// Copyright 2026 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package charset

import (
	"bytes"
	"io"

	"github.com/pingcap/errors"
	"golang.org/x/text/transform"
)

var (
	// ErrUnknownCharset is returned for names not in the registry.
	ErrUnknownCharset = errors.New("unknown character set")
	// ErrNoDecoder is returned for charsets that cannot be converted to UTF-8.
	ErrNoDecoder = errors.New("character set has no decoder")
)

// replacementBytes are the UTF-8 bytes of U+FFFD.
var replacementBytes = []byte{0xEF, 0xBF, 0xBD}

func decoderOf(name string) (transform.Transformer, error) {
	cs, ok := GetCharset(name)
	if !ok {
		return nil, errors.Annotate(ErrUnknownCharset, name)
	}
	if !cs.CanDecode() {
		return nil, errors.Annotate(ErrNoDecoder, cs.Name)
	}
	return cs.enc.NewDecoder(), nil
}

// Decode converts src from the named charset to UTF-8. dest is reused when
// not nil. Bytes that do not decode become U+FFFD and the first of them is
// reported as an error together with the converted result.
func Decode(dest *bytes.Buffer, src []byte, name string) ([]byte, error) {
	tfm, err := decoderOf(name)
	if err != nil {
		return nil, err
	}
	if dest == nil {
		dest = &bytes.Buffer{}
	}
	dest.Reset()
	dest.Grow(len(src))
	out, _, err := transform.Bytes(tfm, src)
	if err != nil {
		return nil, errors.Annotatef(err, "decode %s", name)
	}
	dest.Write(out)
	if i := bytes.Index(out, replacementBytes); i >= 0 && !bytes.Contains(src, replacementBytes) {
		return dest.Bytes(), errors.Errorf("invalid %s string at output offset %d", name, i)
	}
	return dest.Bytes(), nil
}

// NewReader returns a reader that decodes r from the named charset to UTF-8.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	tfm, err := decoderOf(name)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, tfm), nil
}
