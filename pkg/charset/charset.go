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
	"slices"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Charset is a MySQL character set.
type Charset struct {
	Name string
	Desc string
	// Maxlen is the longest byte sequence of one character.
	Maxlen int
	// enc is nil when no decoder exists for the charset.
	enc encoding.Encoding
}

// CanDecode reports whether text in c can be converted to UTF-8.
func (c *Charset) CanDecode() bool {
	return c.enc != nil
}

// Encoding returns the x/text encoding of c, or nil.
func (c *Charset) Encoding() encoding.Encoding {
	return c.enc
}

var charsets = map[string]*Charset{
	"armscii8": {Name: "armscii8", Desc: "ARMSCII-8 Armenian", Maxlen: 1},
	"ascii":    {Name: "ascii", Desc: "US ASCII", Maxlen: 1, enc: encoding.Nop},
	"big5":     {Name: "big5", Desc: "Big5 Traditional Chinese", Maxlen: 2, enc: traditionalchinese.Big5},
	"binary":   {Name: "binary", Desc: "Binary pseudo charset", Maxlen: 1, enc: encoding.Nop},
	"cp1250":   {Name: "cp1250", Desc: "Windows Central European", Maxlen: 1, enc: charmap.Windows1250},
	"cp1251":   {Name: "cp1251", Desc: "Windows Cyrillic", Maxlen: 1, enc: charmap.Windows1251},
	"cp1256":   {Name: "cp1256", Desc: "Windows Arabic", Maxlen: 1, enc: charmap.Windows1256},
	"cp1257":   {Name: "cp1257", Desc: "Windows Baltic", Maxlen: 1, enc: charmap.Windows1257},
	"cp850":    {Name: "cp850", Desc: "DOS West European", Maxlen: 1, enc: charmap.CodePage850},
	"cp852":    {Name: "cp852", Desc: "DOS Central European", Maxlen: 1, enc: charmap.CodePage852},
	"cp866":    {Name: "cp866", Desc: "DOS Russian", Maxlen: 1, enc: charmap.CodePage866},
	"cp932":    {Name: "cp932", Desc: "SJIS for Windows Japanese", Maxlen: 2, enc: japanese.ShiftJIS},
	"dec8":     {Name: "dec8", Desc: "DEC West European", Maxlen: 1},
	"eucjpms":  {Name: "eucjpms", Desc: "UJIS for Windows Japanese", Maxlen: 3, enc: japanese.EUCJP},
	"euckr":    {Name: "euckr", Desc: "EUC-KR Korean", Maxlen: 2, enc: korean.EUCKR},
	"gb18030":  {Name: "gb18030", Desc: "China National Standard GB18030", Maxlen: 4, enc: simplifiedchinese.GB18030},
	"gb2312":   {Name: "gb2312", Desc: "GB2312 Simplified Chinese", Maxlen: 2, enc: simplifiedchinese.GBK},
	"gbk":      {Name: "gbk", Desc: "GBK Simplified Chinese", Maxlen: 2, enc: simplifiedchinese.GBK},
	"geostd8":  {Name: "geostd8", Desc: "GEOSTD8 Georgian", Maxlen: 1},
	"greek":    {Name: "greek", Desc: "ISO 8859-7 Greek", Maxlen: 1, enc: charmap.ISO8859_7},
	"hebrew":   {Name: "hebrew", Desc: "ISO 8859-8 Hebrew", Maxlen: 1, enc: charmap.ISO8859_8},
	"hp8":      {Name: "hp8", Desc: "HP West European", Maxlen: 1},
	"keybcs2":  {Name: "keybcs2", Desc: "DOS Kamenicky Czech-Slovak", Maxlen: 1},
	"koi8r":    {Name: "koi8r", Desc: "KOI8-R Relcom Russian", Maxlen: 1, enc: charmap.KOI8R},
	"koi8u":    {Name: "koi8u", Desc: "KOI8-U Ukrainian", Maxlen: 1, enc: charmap.KOI8U},
	"latin1":   {Name: "latin1", Desc: "cp1252 West European", Maxlen: 1, enc: charmap.Windows1252},
	"latin2":   {Name: "latin2", Desc: "ISO 8859-2 Central European", Maxlen: 1, enc: charmap.ISO8859_2},
	"latin5":   {Name: "latin5", Desc: "ISO 8859-9 Turkish", Maxlen: 1, enc: charmap.ISO8859_9},
	"latin7":   {Name: "latin7", Desc: "ISO 8859-13 Baltic", Maxlen: 1, enc: charmap.ISO8859_13},
	"macce":    {Name: "macce", Desc: "Mac Central European", Maxlen: 1},
	"macroman": {Name: "macroman", Desc: "Mac West European", Maxlen: 1, enc: charmap.Macintosh},
	"sjis":     {Name: "sjis", Desc: "Shift-JIS Japanese", Maxlen: 2, enc: japanese.ShiftJIS},
	"swe7":     {Name: "swe7", Desc: "7bit Swedish", Maxlen: 1},
	"tis620":   {Name: "tis620", Desc: "TIS620 Thai", Maxlen: 1, enc: charmap.Windows874},
	"ucs2":     {Name: "ucs2", Desc: "UCS-2 Unicode", Maxlen: 2, enc: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
	"ujis":     {Name: "ujis", Desc: "EUC-JP Japanese", Maxlen: 3, enc: japanese.EUCJP},
	"utf16":    {Name: "utf16", Desc: "UTF-16 Unicode", Maxlen: 4, enc: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
	"utf16le":  {Name: "utf16le", Desc: "UTF-16LE Unicode", Maxlen: 4, enc: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
	"utf32":    {Name: "utf32", Desc: "UTF-32 Unicode", Maxlen: 4, enc: utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)},
	"utf8":     {Name: "utf8", Desc: "Alias for utf8mb3", Maxlen: 3, enc: encoding.Nop},
	"utf8mb3":  {Name: "utf8mb3", Desc: "UTF-8 Unicode", Maxlen: 3, enc: encoding.Nop},
	"utf8mb4":  {Name: "utf8mb4", Desc: "UTF-8 Unicode", Maxlen: 4, enc: encoding.Nop},
}

// GetCharset returns the charset called name. The lookup ignores case.
func GetCharset(name string) (*Charset, bool) {
	cs, ok := charsets[strings.ToLower(name)]
	return cs, ok
}

// IsIntroducer reports whether text is a charset introducer such as
// "_utf8mb4" or "_LATIN1".
func IsIntroducer(text string) bool {
	if len(text) < 2 || text[0] != '_' {
		return false
	}
	_, ok := GetCharset(text[1:])
	return ok
}

// Names returns the names of all charsets in order.
func Names() []string {
	names := make([]string, 0, len(charsets))
	for name := range charsets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
