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

package lexer

// Token kinds. Values are stable identifiers shared with grammar files, gaps
// in the numbering are intentional.
const (
	// EOF is the kind of the end-of-input sentinel.
	EOF Kind = -1

	// Operators and punctuation.
	EqualOperator               Kind = 1
	AssignOperator              Kind = 2
	NullSafeEqualOperator       Kind = 3
	GreaterOrEqualOperator      Kind = 4
	GreaterThanOperator         Kind = 5
	LessOrEqualOperator         Kind = 6
	LessThanOperator            Kind = 7
	NotEqualOperator            Kind = 8
	PlusOperator                Kind = 9
	MinusOperator               Kind = 10
	MultOperator                Kind = 11
	DivOperator                 Kind = 12
	ModOperator                 Kind = 13
	LogicalNotOperator          Kind = 14
	BitwiseNotOperator          Kind = 15
	ShiftLeftOperator           Kind = 16
	ShiftRightOperator          Kind = 17
	LogicalAndOperator          Kind = 18
	BitwiseAndOperator          Kind = 19
	BitwiseXorOperator          Kind = 20
	LogicalOrOperator           Kind = 21
	BitwiseOrOperator           Kind = 22
	DotSymbol                   Kind = 23
	CommaSymbol                 Kind = 24
	SemicolonSymbol             Kind = 25
	ColonSymbol                 Kind = 26
	OpenParSymbol               Kind = 27
	CloseParSymbol              Kind = 28
	OpenCurlySymbol             Kind = 29
	CloseCurlySymbol            Kind = 30
	UnderlineSymbol             Kind = 31
	JSONSeparatorSymbol         Kind = 32
	JSONUnquotedSeparatorSymbol Kind = 33
	AtSignSymbol                Kind = 34
	AtTextSuffix                Kind = 35
	AtAtSignSymbol              Kind = 36
	Null2Symbol                 Kind = 37
	ParamMarker                 Kind = 38

	// Data type keywords.
	IntSymbol                Kind = 39
	TinyintSymbol            Kind = 40
	SmallintSymbol           Kind = 41
	MediumintSymbol          Kind = 42
	BigintSymbol             Kind = 43
	RealSymbol               Kind = 44
	DoubleSymbol             Kind = 45
	FloatSymbol              Kind = 46
	DecimalSymbol            Kind = 47
	NumericSymbol            Kind = 48
	DateSymbol               Kind = 49
	TimeSymbol               Kind = 50
	TimestampSymbol          Kind = 51
	DatetimeSymbol           Kind = 52
	YearSymbol               Kind = 53
	CharSymbol               Kind = 54
	VarcharSymbol            Kind = 55
	BinarySymbol             Kind = 56
	VarbinarySymbol          Kind = 57
	TinyblobSymbol           Kind = 58
	BlobSymbol               Kind = 59
	MediumblobSymbol         Kind = 60
	LongblobSymbol           Kind = 61
	TinytextSymbol           Kind = 62
	TextSymbol               Kind = 63
	MediumtextSymbol         Kind = 64
	LongtextSymbol           Kind = 65
	EnumSymbol               Kind = 66
	SetSymbol                Kind = 67
	JSONSymbol               Kind = 68
	GeometrySymbol           Kind = 69
	PointSymbol              Kind = 70
	LinestringSymbol         Kind = 71
	PolygonSymbol            Kind = 72
	GeometrycollectionSymbol Kind = 73
	MultipointSymbol         Kind = 74
	MultilinestringSymbol    Kind = 75
	MultipolygonSymbol       Kind = 76

	// Keywords.
	AccessibleSymbol                  Kind = 77
	AccountSymbol                     Kind = 78
	ActionSymbol                      Kind = 79
	AddSymbol                         Kind = 80
	AfterSymbol                       Kind = 81
	AgainstSymbol                     Kind = 82
	AggregateSymbol                   Kind = 83
	AlgorithmSymbol                   Kind = 84
	AllSymbol                         Kind = 85
	AlterSymbol                       Kind = 86
	AlwaysSymbol                      Kind = 87
	AnalyseSymbol                     Kind = 88
	AnalyzeSymbol                     Kind = 89
	AndSymbol                         Kind = 90
	AnySymbol                         Kind = 91
	AsSymbol                          Kind = 92
	AscSymbol                         Kind = 93
	AsensitiveSymbol                  Kind = 94
	AtSymbol                          Kind = 95
	AutoextendSizeSymbol              Kind = 96
	AutoIncrementSymbol               Kind = 97
	AvgRowLengthSymbol                Kind = 98
	AvgSymbol                         Kind = 99
	BackupSymbol                      Kind = 100
	BeforeSymbol                      Kind = 101
	BeginSymbol                       Kind = 102
	BetweenSymbol                     Kind = 103
	BinlogSymbol                      Kind = 106
	BitAndSymbol                      Kind = 107
	BitOrSymbol                       Kind = 108
	BitXorSymbol                      Kind = 109
	BlockSymbol                       Kind = 111
	BoolSymbol                        Kind = 112
	BooleanSymbol                     Kind = 113
	BothSymbol                        Kind = 114
	BtreeSymbol                       Kind = 115
	BySymbol                          Kind = 116
	ByteSymbol                        Kind = 117
	CacheSymbol                       Kind = 118
	CallSymbol                        Kind = 119
	CascadeSymbol                     Kind = 120
	CascadedSymbol                    Kind = 121
	CaseSymbol                        Kind = 122
	CastSymbol                        Kind = 123
	CatalogNameSymbol                 Kind = 124
	ChainSymbol                       Kind = 125
	ChangeSymbol                      Kind = 126
	ChangedSymbol                     Kind = 127
	ChannelSymbol                     Kind = 128
	CharsetSymbol                     Kind = 129
	CharacterSymbol                   Kind = 131
	CheckSymbol                       Kind = 132
	ChecksumSymbol                    Kind = 133
	CipherSymbol                      Kind = 134
	ClassOriginSymbol                 Kind = 135
	ClientSymbol                      Kind = 136
	CloseSymbol                       Kind = 137
	CoalesceSymbol                    Kind = 138
	CodeSymbol                        Kind = 139
	CollateSymbol                     Kind = 140
	CollationSymbol                   Kind = 141
	ColumnFormatSymbol                Kind = 142
	ColumnNameSymbol                  Kind = 143
	ColumnsSymbol                     Kind = 144
	ColumnSymbol                      Kind = 145
	CommentSymbol                     Kind = 146
	CommittedSymbol                   Kind = 147
	CommitSymbol                      Kind = 148
	CompactSymbol                     Kind = 149
	CompletionSymbol                  Kind = 150
	CompressedSymbol                  Kind = 151
	CompressionSymbol                 Kind = 152
	ConcurrentSymbol                  Kind = 153
	ConditionSymbol                   Kind = 154
	ConnectionSymbol                  Kind = 155
	ConsistentSymbol                  Kind = 156
	ConstraintSymbol                  Kind = 157
	ConstraintCatalogSymbol           Kind = 158
	ConstraintNameSymbol              Kind = 159
	ConstraintSchemaSymbol            Kind = 160
	ContainsSymbol                    Kind = 161
	ContextSymbol                     Kind = 162
	ContinueSymbol                    Kind = 163
	ContributorsSymbol                Kind = 164
	ConvertSymbol                     Kind = 165
	CountSymbol                       Kind = 166
	CPUSymbol                         Kind = 167
	CreateSymbol                      Kind = 168
	CrossSymbol                       Kind = 169
	CubeSymbol                        Kind = 170
	CurdateSymbol                     Kind = 171
	CurrentDateSymbol                 Kind = 172
	CurrentTimeSymbol                 Kind = 173
	CurrentTimestampSymbol            Kind = 174
	CurrentUserSymbol                 Kind = 175
	CurrentSymbol                     Kind = 176
	CursorSymbol                      Kind = 177
	CursorNameSymbol                  Kind = 178
	CurtimeSymbol                     Kind = 179
	DatabaseSymbol                    Kind = 180
	DatabasesSymbol                   Kind = 181
	DatafileSymbol                    Kind = 182
	DataSymbol                        Kind = 183
	DateAddSymbol                     Kind = 185
	DateSubSymbol                     Kind = 186
	DayHourSymbol                     Kind = 188
	DayMicrosecondSymbol              Kind = 189
	DayMinuteSymbol                   Kind = 190
	DaySecondSymbol                   Kind = 191
	DaySymbol                         Kind = 192
	DayofmonthSymbol                  Kind = 193
	DeallocateSymbol                  Kind = 194
	DecSymbol                         Kind = 195
	DeclareSymbol                     Kind = 197
	DefaultSymbol                     Kind = 198
	DefaultAuthSymbol                 Kind = 199
	DefinerSymbol                     Kind = 200
	DelayedSymbol                     Kind = 201
	DelayKeyWriteSymbol               Kind = 202
	DeleteSymbol                      Kind = 203
	DescSymbol                        Kind = 204
	DescribeSymbol                    Kind = 205
	DesKeyFileSymbol                  Kind = 206
	DeterministicSymbol               Kind = 207
	DiagnosticsSymbol                 Kind = 208
	DirectorySymbol                   Kind = 209
	DisableSymbol                     Kind = 210
	DiscardSymbol                     Kind = 211
	DiskSymbol                        Kind = 212
	DistinctSymbol                    Kind = 213
	DistinctrowSymbol                 Kind = 214
	DivSymbol                         Kind = 215
	DoSymbol                          Kind = 218
	DropSymbol                        Kind = 219
	DualSymbol                        Kind = 220
	DumpfileSymbol                    Kind = 221
	DuplicateSymbol                   Kind = 222
	DynamicSymbol                     Kind = 223
	EachSymbol                        Kind = 224
	ElseSymbol                        Kind = 225
	ElseifSymbol                      Kind = 226
	EmptySymbol                       Kind = 227
	EnableSymbol                      Kind = 228
	EnclosedSymbol                    Kind = 229
	EncryptionSymbol                  Kind = 230
	EndSymbol                         Kind = 231
	EndsSymbol                        Kind = 232
	EnforcedSymbol                    Kind = 233
	EnginesSymbol                     Kind = 234
	EngineSymbol                      Kind = 235
	ErrorSymbol                       Kind = 237
	ErrorsSymbol                      Kind = 238
	EscapedSymbol                     Kind = 239
	EscapeSymbol                      Kind = 240
	EventSymbol                       Kind = 241
	EventsSymbol                      Kind = 242
	EverySymbol                       Kind = 243
	ExchangeSymbol                    Kind = 244
	ExceptSymbol                      Kind = 245
	ExecuteSymbol                     Kind = 246
	ExistsSymbol                      Kind = 247
	ExitSymbol                        Kind = 248
	ExpansionSymbol                   Kind = 249
	ExpireSymbol                      Kind = 250
	ExplainSymbol                     Kind = 251
	ExportSymbol                      Kind = 252
	ExtendedSymbol                    Kind = 253
	ExtentSizeSymbol                  Kind = 254
	ExtractSymbol                     Kind = 255
	FalseSymbol                       Kind = 256
	FastSymbol                        Kind = 257
	FaultsSymbol                      Kind = 258
	FetchSymbol                       Kind = 259
	FieldsSymbol                      Kind = 260
	FileBlockSizeSymbol               Kind = 261
	FileSymbol                        Kind = 262
	FilterSymbol                      Kind = 263
	FirstSymbol                       Kind = 264
	FirstValueSymbol                  Kind = 265
	FixedSymbol                       Kind = 266
	Float4Symbol                      Kind = 267
	Float8Symbol                      Kind = 268
	FlushSymbol                       Kind = 270
	FollowsSymbol                     Kind = 271
	ForceSymbol                       Kind = 272
	ForeignSymbol                     Kind = 273
	ForSymbol                         Kind = 274
	FormatSymbol                      Kind = 275
	FoundSymbol                       Kind = 276
	FromSymbol                        Kind = 277
	FulltextSymbol                    Kind = 278
	FullSymbol                        Kind = 279
	FunctionSymbol                    Kind = 280
	GeneratedSymbol                   Kind = 281
	GeneralSymbol                     Kind = 282
	GetFormatSymbol                   Kind = 285
	GetMasterPublicKeySymbol          Kind = 286
	GlobalSymbol                      Kind = 287
	GrantSymbol                       Kind = 288
	GrantsSymbol                      Kind = 289
	GroupConcatSymbol                 Kind = 290
	GroupReplicationSymbol            Kind = 291
	GroupSymbol                       Kind = 292
	HandlerSymbol                     Kind = 293
	HashSymbol                        Kind = 294
	HavingSymbol                      Kind = 295
	HelpSymbol                        Kind = 296
	HighPrioritySymbol                Kind = 297
	HistogramSymbol                   Kind = 298
	HistorySymbol                     Kind = 299
	HostSymbol                        Kind = 300
	HostsSymbol                       Kind = 301
	HourMicrosecondSymbol             Kind = 302
	HourMinuteSymbol                  Kind = 303
	HourSecondSymbol                  Kind = 304
	HourSymbol                        Kind = 305
	IdentifiedSymbol                  Kind = 306
	IfSymbol                          Kind = 307
	IgnoreSymbol                      Kind = 308
	IgnoreServerIdsSymbol             Kind = 309
	ImportSymbol                      Kind = 310
	InSymbol                          Kind = 311
	IndexesSymbol                     Kind = 312
	IndexSymbol                       Kind = 313
	InfileSymbol                      Kind = 314
	InitialSizeSymbol                 Kind = 315
	InnerSymbol                       Kind = 316
	InoutSymbol                       Kind = 317
	InsensitiveSymbol                 Kind = 318
	InsertSymbol                      Kind = 319
	InsertMethodSymbol                Kind = 320
	InstanceSymbol                    Kind = 321
	InstallSymbol                     Kind = 322
	IntegerSymbol                     Kind = 324
	IntervalSymbol                    Kind = 325
	IntoSymbol                        Kind = 326
	InvisibleSymbol                   Kind = 327
	InvokerSymbol                     Kind = 328
	IOSymbol                          Kind = 329
	IPCSymbol                         Kind = 330
	IsSymbol                          Kind = 331
	IsolationSymbol                   Kind = 332
	IssuerSymbol                      Kind = 333
	IterateSymbol                     Kind = 334
	JoinSymbol                        Kind = 335
	JSONTableSymbol                   Kind = 337
	JSONArrayaggSymbol                Kind = 338
	JSONObjectaggSymbol               Kind = 339
	KeysSymbol                        Kind = 340
	KeyBlockSizeSymbol                Kind = 341
	KeySymbol                         Kind = 342
	KillSymbol                        Kind = 343
	LanguageSymbol                    Kind = 344
	LastSymbol                        Kind = 345
	LastValueSymbol                   Kind = 346
	LateralSymbol                     Kind = 347
	LeadSymbol                        Kind = 348
	LeadingSymbol                     Kind = 349
	LeaveSymbol                       Kind = 350
	LeavesSymbol                      Kind = 351
	LeftSymbol                        Kind = 352
	LessSymbol                        Kind = 353
	LevelSymbol                       Kind = 354
	LikeSymbol                        Kind = 355
	LimitSymbol                       Kind = 356
	LinearSymbol                      Kind = 357
	LinesSymbol                       Kind = 358
	ListSymbol                        Kind = 360
	LoadSymbol                        Kind = 361
	LocaltimeSymbol                   Kind = 362
	LocaltimestampSymbol              Kind = 363
	LocalSymbol                       Kind = 364
	LocatorSymbol                     Kind = 365
	LockSymbol                        Kind = 366
	LocksSymbol                       Kind = 367
	LogfileSymbol                     Kind = 368
	LogsSymbol                        Kind = 369
	LoopSymbol                        Kind = 372
	LowPrioritySymbol                 Kind = 373
	MasterSymbol                      Kind = 374
	MasterAutoPositionSymbol          Kind = 375
	MasterBindSymbol                  Kind = 376
	MasterConnectRetrySymbol          Kind = 377
	MasterDelaySymbol                 Kind = 378
	MasterHeartbeatPeriodSymbol       Kind = 379
	MasterHostSymbol                  Kind = 380
	NetworkNamespaceSymbol            Kind = 381
	MasterLogFileSymbol               Kind = 382
	MasterLogPosSymbol                Kind = 383
	MasterPasswordSymbol              Kind = 384
	MasterPortSymbol                  Kind = 385
	MasterPublicKeyPathSymbol         Kind = 386
	MasterRetryCountSymbol            Kind = 387
	MasterServerIDSymbol              Kind = 388
	MasterSSLCapathSymbol             Kind = 389
	MasterSSLCaSymbol                 Kind = 390
	MasterSSLCertSymbol               Kind = 391
	MasterSSLCipherSymbol             Kind = 392
	MasterSSLCrlSymbol                Kind = 393
	MasterSSLCrlpathSymbol            Kind = 394
	MasterSSLKeySymbol                Kind = 395
	MasterSSLSymbol                   Kind = 396
	MasterSSLVerifyServerCertSymbol   Kind = 397
	MasterTLSVersionSymbol            Kind = 398
	MasterTLSCiphersuitesSymbol       Kind = 399
	MasterUserSymbol                  Kind = 400
	MasterZstdCompressionLevelSymbol  Kind = 401
	MatchSymbol                       Kind = 402
	MaxConnectionsPerHourSymbol       Kind = 403
	MaxQueriesPerHourSymbol           Kind = 404
	MaxRowsSymbol                     Kind = 405
	MaxSizeSymbol                     Kind = 406
	MaxStatementTimeSymbol            Kind = 407
	MaxUpdatesPerHourSymbol           Kind = 408
	MaxUserConnectionsSymbol          Kind = 409
	MaxvalueSymbol                    Kind = 410
	MaxSymbol                         Kind = 411
	MediumSymbol                      Kind = 415
	MemberSymbol                      Kind = 416
	MemorySymbol                      Kind = 417
	MergeSymbol                       Kind = 418
	MessageTextSymbol                 Kind = 419
	MicrosecondSymbol                 Kind = 420
	MiddleintSymbol                   Kind = 421
	MigrateSymbol                     Kind = 422
	MinuteMicrosecondSymbol           Kind = 423
	MinuteSecondSymbol                Kind = 424
	MinuteSymbol                      Kind = 425
	MinRowsSymbol                     Kind = 426
	MinSymbol                         Kind = 427
	ModeSymbol                        Kind = 428
	ModifiesSymbol                    Kind = 429
	ModifySymbol                      Kind = 430
	ModSymbol                         Kind = 431
	MonthSymbol                       Kind = 432
	MutexSymbol                       Kind = 436
	MysqlErrnoSymbol                  Kind = 437
	NameSymbol                        Kind = 438
	NamesSymbol                       Kind = 439
	NationalSymbol                    Kind = 440
	NaturalSymbol                     Kind = 441
	NcharSymbol                       Kind = 442
	NdbclusterSymbol                  Kind = 443
	NdbSymbol                         Kind = 444
	NegSymbol                         Kind = 445
	NestedSymbol                      Kind = 446
	NeverSymbol                       Kind = 447
	NewSymbol                         Kind = 448
	NextSymbol                        Kind = 449
	NodegroupSymbol                   Kind = 450
	NoneSymbol                        Kind = 451
	NonblockingSymbol                 Kind = 452
	NotSymbol                         Kind = 453
	NowaitSymbol                      Kind = 454
	NoWaitSymbol                      Kind = 455
	NoWriteToBinlogSymbol             Kind = 456
	NullSymbol                        Kind = 457
	NullsSymbol                       Kind = 458
	NumberSymbol                      Kind = 459
	NvarcharSymbol                    Kind = 461
	NthValueSymbol                    Kind = 462
	NtileSymbol                       Kind = 463
	OfSymbol                          Kind = 464
	OffSymbol                         Kind = 465
	OfflineSymbol                     Kind = 466
	OffsetSymbol                      Kind = 467
	OjSymbol                          Kind = 468
	OldPasswordSymbol                 Kind = 469
	OldSymbol                         Kind = 470
	OnSymbol                          Kind = 471
	OnlineSymbol                      Kind = 472
	OneSymbol                         Kind = 473
	OnlySymbol                        Kind = 474
	OpenSymbol                        Kind = 475
	OptionalSymbol                    Kind = 476
	OptionallySymbol                  Kind = 477
	OptionsSymbol                     Kind = 478
	OptionSymbol                      Kind = 479
	OptimizeSymbol                    Kind = 480
	OptimizerCostsSymbol              Kind = 481
	OrderSymbol                       Kind = 482
	OrdinalitySymbol                  Kind = 483
	OrganizationSymbol                Kind = 484
	OrSymbol                          Kind = 485
	OthersSymbol                      Kind = 486
	OuterSymbol                       Kind = 487
	OutfileSymbol                     Kind = 488
	OutSymbol                         Kind = 489
	OwnerSymbol                       Kind = 490
	PackKeysSymbol                    Kind = 491
	PageSymbol                        Kind = 492
	ParserSymbol                      Kind = 493
	PartialSymbol                     Kind = 494
	PartitioningSymbol                Kind = 495
	PartitionsSymbol                  Kind = 496
	PartitionSymbol                   Kind = 497
	PasswordSymbol                    Kind = 498
	PathSymbol                        Kind = 499
	PercentRankSymbol                 Kind = 500
	PersistSymbol                     Kind = 501
	PersistOnlySymbol                 Kind = 502
	PhaseSymbol                       Kind = 503
	PluginSymbol                      Kind = 504
	PluginsSymbol                     Kind = 505
	PluginDirSymbol                   Kind = 506
	PortSymbol                        Kind = 509
	PositionSymbol                    Kind = 510
	PrecedesSymbol                    Kind = 511
	PrecedingSymbol                   Kind = 512
	PrecisionSymbol                   Kind = 513
	PrepareSymbol                     Kind = 514
	PreserveSymbol                    Kind = 515
	PrevSymbol                        Kind = 516
	PrimarySymbol                     Kind = 517
	PrivilegesSymbol                  Kind = 518
	PrivilegeChecksUserSymbol         Kind = 519
	ProcedureSymbol                   Kind = 520
	ProcessSymbol                     Kind = 521
	ProcesslistSymbol                 Kind = 522
	ProfilesSymbol                    Kind = 523
	ProfileSymbol                     Kind = 524
	ProxySymbol                       Kind = 525
	PurgeSymbol                       Kind = 526
	QuarterSymbol                     Kind = 527
	QuerySymbol                       Kind = 528
	QuickSymbol                       Kind = 529
	RandomSymbol                      Kind = 530
	RangeSymbol                       Kind = 531
	RankSymbol                        Kind = 532
	ReadsSymbol                       Kind = 533
	ReadOnlySymbol                    Kind = 534
	ReadSymbol                        Kind = 535
	ReadWriteSymbol                   Kind = 536
	RebuildSymbol                     Kind = 538
	RecoverSymbol                     Kind = 539
	RedofileSymbol                    Kind = 540
	RedoBufferSizeSymbol              Kind = 541
	RedundantSymbol                   Kind = 542
	ReferencesSymbol                  Kind = 543
	RecursiveSymbol                   Kind = 544
	RegexpSymbol                      Kind = 545
	RelaylogSymbol                    Kind = 546
	RelaySymbol                       Kind = 547
	RelayLogFileSymbol                Kind = 548
	RelayLogPosSymbol                 Kind = 549
	RelayThreadSymbol                 Kind = 550
	ReleaseSymbol                     Kind = 551
	ReloadSymbol                      Kind = 552
	RemoteSymbol                      Kind = 553
	RemoveSymbol                      Kind = 554
	RenameSymbol                      Kind = 555
	ReorganizeSymbol                  Kind = 556
	RepairSymbol                      Kind = 557
	RepeatSymbol                      Kind = 558
	RepeatableSymbol                  Kind = 559
	ReplaceSymbol                     Kind = 560
	ReplicationSymbol                 Kind = 561
	ReplicateDoDBSymbol               Kind = 562
	ReplicateIgnoreDBSymbol           Kind = 563
	ReplicateDoTableSymbol            Kind = 564
	ReplicateIgnoreTableSymbol        Kind = 565
	ReplicateWildDoTableSymbol        Kind = 566
	ReplicateWildIgnoreTableSymbol    Kind = 567
	ReplicateRewriteDBSymbol          Kind = 568
	RequireSymbol                     Kind = 569
	RequireRowFormatSymbol            Kind = 570
	RequireTablePrimaryKeyCheckSymbol Kind = 571
	ResetSymbol                       Kind = 572
	ResignalSymbol                    Kind = 573
	ResourceSymbol                    Kind = 574
	RespectSymbol                     Kind = 575
	RestartSymbol                     Kind = 576
	RestoreSymbol                     Kind = 577
	RestrictSymbol                    Kind = 578
	ResumeSymbol                      Kind = 579
	RetainSymbol                      Kind = 580
	ReturnedSqlstateSymbol            Kind = 581
	ReturnsSymbol                     Kind = 582
	ReuseSymbol                       Kind = 583
	ReverseSymbol                     Kind = 584
	RevokeSymbol                      Kind = 585
	RightSymbol                       Kind = 586
	RlikeSymbol                       Kind = 587
	RoleSymbol                        Kind = 588
	RollbackSymbol                    Kind = 589
	RollupSymbol                      Kind = 590
	RotateSymbol                      Kind = 591
	RowSymbol                         Kind = 592
	RowsSymbol                        Kind = 593
	RowCountSymbol                    Kind = 594
	RowFormatSymbol                   Kind = 595
	RowNumberSymbol                   Kind = 596
	RtreeSymbol                       Kind = 597
	SavepointSymbol                   Kind = 598
	SchemaSymbol                      Kind = 599
	SchemasSymbol                     Kind = 600
	SchemaNameSymbol                  Kind = 601
	ScheduleSymbol                    Kind = 602
	SecondMicrosecondSymbol           Kind = 603
	SecondSymbol                      Kind = 604
	SecondarySymbol                   Kind = 605
	SecondaryEngineSymbol             Kind = 606
	SecondaryLoadSymbol               Kind = 607
	SecondaryUnloadSymbol             Kind = 608
	SecuritySymbol                    Kind = 609
	SelectSymbol                      Kind = 610
	SensitiveSymbol                   Kind = 611
	SeparatorSymbol                   Kind = 612
	SerializableSymbol                Kind = 613
	SerialSymbol                      Kind = 614
	ServerSymbol                      Kind = 615
	ServerOptionsSymbol               Kind = 616
	SessionSymbol                     Kind = 617
	SessionUserSymbol                 Kind = 618
	SetVarSymbol                      Kind = 620
	ShareSymbol                       Kind = 621
	ShowSymbol                        Kind = 622
	ShutdownSymbol                    Kind = 623
	SignalSymbol                      Kind = 624
	SignedSymbol                      Kind = 625
	SimpleSymbol                      Kind = 626
	SkipSymbol                        Kind = 627
	SlaveSymbol                       Kind = 628
	SlowSymbol                        Kind = 629
	SnapshotSymbol                    Kind = 631
	SomeSymbol                        Kind = 632
	SocketSymbol                      Kind = 633
	SonameSymbol                      Kind = 634
	SoundsSymbol                      Kind = 635
	SourceSymbol                      Kind = 636
	SpatialSymbol                     Kind = 637
	SQLSymbol                         Kind = 638
	SqlexceptionSymbol                Kind = 639
	SqlstateSymbol                    Kind = 640
	SqlwarningSymbol                  Kind = 641
	SQLAfterGTIDSSymbol               Kind = 642
	SQLAfterMtsGapsSymbol             Kind = 643
	SQLBeforeGTIDSSymbol              Kind = 644
	SQLBigResultSymbol                Kind = 645
	SQLBufferResultSymbol             Kind = 646
	SQLCalcFoundRowsSymbol            Kind = 647
	SQLCacheSymbol                    Kind = 648
	SQLNoCacheSymbol                  Kind = 649
	SQLSmallResultSymbol              Kind = 650
	SQLThreadSymbol                   Kind = 651
	SQLTsiDaySymbol                   Kind = 652
	SQLTsiHourSymbol                  Kind = 653
	SQLTsiMicrosecondSymbol           Kind = 654
	SQLTsiMinuteSymbol                Kind = 655
	SQLTsiMonthSymbol                 Kind = 656
	SQLTsiQuarterSymbol               Kind = 657
	SQLTsiSecondSymbol                Kind = 658
	SQLTsiWeekSymbol                  Kind = 659
	SQLTsiYearSymbol                  Kind = 660
	SridSymbol                        Kind = 661
	SSLSymbol                         Kind = 662
	StackedSymbol                     Kind = 663
	StartingSymbol                    Kind = 664
	StartsSymbol                      Kind = 665
	StatsAutoRecalcSymbol             Kind = 666
	StatsPersistentSymbol             Kind = 667
	StatsSamplePagesSymbol            Kind = 668
	StatusSymbol                      Kind = 669
	StdSymbol                         Kind = 670
	StddevPopSymbol                   Kind = 671
	StddevSampSymbol                  Kind = 672
	StddevSymbol                      Kind = 673
	StopSymbol                        Kind = 674
	StorageSymbol                     Kind = 675
	StoredSymbol                      Kind = 676
	StraightJoinSymbol                Kind = 677
	StreamSymbol                      Kind = 678
	StringSymbol                      Kind = 679
	SubclassOriginSymbol              Kind = 680
	SubdateSymbol                     Kind = 681
	SubjectSymbol                     Kind = 682
	SubpartitionsSymbol               Kind = 683
	SubpartitionSymbol                Kind = 684
	SubstrSymbol                      Kind = 685
	SubstringSymbol                   Kind = 686
	SumSymbol                         Kind = 687
	SuperSymbol                       Kind = 688
	SuspendSymbol                     Kind = 689
	SwapsSymbol                       Kind = 690
	SwitchesSymbol                    Kind = 691
	SysdateSymbol                     Kind = 692
	SystemSymbol                      Kind = 693
	SystemUserSymbol                  Kind = 694
	TableSymbol                       Kind = 695
	TablesSymbol                      Kind = 696
	TablespaceSymbol                  Kind = 697
	TableChecksumSymbol               Kind = 698
	TableNameSymbol                   Kind = 699
	TemporarySymbol                   Kind = 700
	TemptableSymbol                   Kind = 701
	TerminatedSymbol                  Kind = 702
	ThanSymbol                        Kind = 704
	ThenSymbol                        Kind = 705
	ThreadPrioritySymbol              Kind = 706
	TiesSymbol                        Kind = 707
	TimestampAddSymbol                Kind = 710
	TimestampDiffSymbol               Kind = 711
	ToSymbol                          Kind = 715
	TrailingSymbol                    Kind = 716
	TransactionSymbol                 Kind = 717
	TriggerSymbol                     Kind = 718
	TriggersSymbol                    Kind = 719
	TrimSymbol                        Kind = 720
	TrueSymbol                        Kind = 721
	TruncateSymbol                    Kind = 722
	TypesSymbol                       Kind = 723
	TypeSymbol                        Kind = 724
	UDFReturnsSymbol                  Kind = 725
	UnboundedSymbol                   Kind = 726
	UncommittedSymbol                 Kind = 727
	UndefinedSymbol                   Kind = 728
	UndoBufferSizeSymbol              Kind = 729
	UndofileSymbol                    Kind = 730
	UndoSymbol                        Kind = 731
	UnicodeSymbol                     Kind = 732
	UnionSymbol                       Kind = 733
	UniqueSymbol                      Kind = 734
	UnknownSymbol                     Kind = 735
	UninstallSymbol                   Kind = 736
	UnsignedSymbol                    Kind = 737
	UpdateSymbol                      Kind = 738
	UpgradeSymbol                     Kind = 739
	UsageSymbol                       Kind = 740
	UserResourcesSymbol               Kind = 741
	UserSymbol                        Kind = 742
	UseFrmSymbol                      Kind = 743
	UseSymbol                         Kind = 744
	UsingSymbol                       Kind = 745
	UTCDateSymbol                     Kind = 746
	UTCTimeSymbol                     Kind = 747
	UTCTimestampSymbol                Kind = 748
	ValidationSymbol                  Kind = 749
	ValueSymbol                       Kind = 750
	ValuesSymbol                      Kind = 751
	VarcharacterSymbol                Kind = 754
	VariablesSymbol                   Kind = 755
	VarianceSymbol                    Kind = 756
	VaryingSymbol                     Kind = 757
	VarPopSymbol                      Kind = 758
	VarSampSymbol                     Kind = 759
	VcpuSymbol                        Kind = 760
	ViewSymbol                        Kind = 761
	VirtualSymbol                     Kind = 762
	VisibleSymbol                     Kind = 763
	WaitSymbol                        Kind = 764
	WarningsSymbol                    Kind = 765
	WeekSymbol                        Kind = 766
	WhenSymbol                        Kind = 767
	WeightStringSymbol                Kind = 768
	WhereSymbol                       Kind = 769
	WhileSymbol                       Kind = 770
	WindowSymbol                      Kind = 771
	WithSymbol                        Kind = 772
	WithoutSymbol                     Kind = 773
	WorkSymbol                        Kind = 774
	WrapperSymbol                     Kind = 775
	WriteSymbol                       Kind = 776
	XaSymbol                          Kind = 777
	X509Symbol                        Kind = 778
	XIDSymbol                         Kind = 779
	XMLSymbol                         Kind = 780
	XorSymbol                         Kind = 781
	YearMonthSymbol                   Kind = 782
	ZerofillSymbol                    Kind = 784
	Int1Symbol                        Kind = 785
	Int2Symbol                        Kind = 786
	Int3Symbol                        Kind = 787
	Int4Symbol                        Kind = 788
	Int8Symbol                        Kind = 789

	// Literals.
	Identifier       Kind = 790
	BackTickQuotedID Kind = 791
	DoubleQuotedText Kind = 792
	SingleQuotedText Kind = 793
	HexNumber        Kind = 794
	BinNumber        Kind = 795
	DecimalNumber    Kind = 796
	IntNumber        Kind = 796
	FloatNumber      Kind = 797

	// Structural markers.
	UnderscoreCharset Kind = 798
	DotIdentifier     Kind = 799
	InvalidInput      Kind = 800
	Linebreak         Kind = 801

	// Kinds numbered after the structural markers. Several of them are only
	// produced through synonyms or SQL modes.
	StartSymbol                      Kind = 802
	UnlockSymbol                     Kind = 803
	CloneSymbol                      Kind = 804
	GetSymbol                        Kind = 805
	ASCIISymbol                      Kind = 806
	BitSymbol                        Kind = 807
	BucketsSymbol                    Kind = 808
	ComponentSymbol                  Kind = 809
	NowSymbol                        Kind = 810
	DefinitionSymbol                 Kind = 811
	DenseRankSymbol                  Kind = 812
	DescriptionSymbol                Kind = 813
	FailedLoginAttemptsSymbol        Kind = 814
	FollowingSymbol                  Kind = 815
	GroupingSymbol                   Kind = 816
	GroupsSymbol                     Kind = 817
	LagSymbol                        Kind = 818
	LongSymbol                       Kind = 819
	MasterCompressionAlgorithmSymbol Kind = 820
	Not2Symbol                       Kind = 821
	NoSymbol                         Kind = 822
	ReferenceSymbol                  Kind = 823
	ReturnSymbol                     Kind = 824
	SpecificSymbol                   Kind = 825
	AuthorsSymbol                    Kind = 826
	AdddateSymbol                    Kind = 827
	ConcatPipesSymbol                Kind = 828
	ActiveSymbol                     Kind = 829
	AdminSymbol                      Kind = 830
	ExcludeSymbol                    Kind = 831
	InactiveSymbol                   Kind = 832
	LockedSymbol                     Kind = 833
	RoutineSymbol                    Kind = 834
	UntilSymbol                      Kind = 835
	ArraySymbol                      Kind = 836
	PasswordLockTimeSymbol           Kind = 837
	NcharText                        Kind = 838
	LongNumber                       Kind = 839
	UlonglongNumber                  Kind = 840
	CumeDistSymbol                   Kind = 842
	FoundRowsSymbol                  Kind = 843
	ConcatSymbol                     Kind = 844
	OverSymbol                       Kind = 845
	IOThreadSymbol                   Kind = 846
	ReplicaSymbol                    Kind = 847
	ConstraintsSymbol                Kind = 848
)

var kindNameList = []struct {
	kind Kind
	name string
}{
	{EqualOperator, "EQUAL_OPERATOR"},
	{AssignOperator, "ASSIGN_OPERATOR"},
	{NullSafeEqualOperator, "NULL_SAFE_EQUAL_OPERATOR"},
	{GreaterOrEqualOperator, "GREATER_OR_EQUAL_OPERATOR"},
	{GreaterThanOperator, "GREATER_THAN_OPERATOR"},
	{LessOrEqualOperator, "LESS_OR_EQUAL_OPERATOR"},
	{LessThanOperator, "LESS_THAN_OPERATOR"},
	{NotEqualOperator, "NOT_EQUAL_OPERATOR"},
	{PlusOperator, "PLUS_OPERATOR"},
	{MinusOperator, "MINUS_OPERATOR"},
	{MultOperator, "MULT_OPERATOR"},
	{DivOperator, "DIV_OPERATOR"},
	{ModOperator, "MOD_OPERATOR"},
	{LogicalNotOperator, "LOGICAL_NOT_OPERATOR"},
	{BitwiseNotOperator, "BITWISE_NOT_OPERATOR"},
	{ShiftLeftOperator, "SHIFT_LEFT_OPERATOR"},
	{ShiftRightOperator, "SHIFT_RIGHT_OPERATOR"},
	{LogicalAndOperator, "LOGICAL_AND_OPERATOR"},
	{BitwiseAndOperator, "BITWISE_AND_OPERATOR"},
	{BitwiseXorOperator, "BITWISE_XOR_OPERATOR"},
	{LogicalOrOperator, "LOGICAL_OR_OPERATOR"},
	{BitwiseOrOperator, "BITWISE_OR_OPERATOR"},
	{DotSymbol, "DOT_SYMBOL"},
	{CommaSymbol, "COMMA_SYMBOL"},
	{SemicolonSymbol, "SEMICOLON_SYMBOL"},
	{ColonSymbol, "COLON_SYMBOL"},
	{OpenParSymbol, "OPEN_PAR_SYMBOL"},
	{CloseParSymbol, "CLOSE_PAR_SYMBOL"},
	{OpenCurlySymbol, "OPEN_CURLY_SYMBOL"},
	{CloseCurlySymbol, "CLOSE_CURLY_SYMBOL"},
	{UnderlineSymbol, "UNDERLINE_SYMBOL"},
	{JSONSeparatorSymbol, "JSON_SEPARATOR_SYMBOL"},
	{JSONUnquotedSeparatorSymbol, "JSON_UNQUOTED_SEPARATOR_SYMBOL"},
	{AtSignSymbol, "AT_SIGN_SYMBOL"},
	{AtTextSuffix, "AT_TEXT_SUFFIX"},
	{AtAtSignSymbol, "AT_AT_SIGN_SYMBOL"},
	{Null2Symbol, "NULL2_SYMBOL"},
	{ParamMarker, "PARAM_MARKER"},
	{IntSymbol, "INT_SYMBOL"},
	{TinyintSymbol, "TINYINT_SYMBOL"},
	{SmallintSymbol, "SMALLINT_SYMBOL"},
	{MediumintSymbol, "MEDIUMINT_SYMBOL"},
	{BigintSymbol, "BIGINT_SYMBOL"},
	{RealSymbol, "REAL_SYMBOL"},
	{DoubleSymbol, "DOUBLE_SYMBOL"},
	{FloatSymbol, "FLOAT_SYMBOL"},
	{DecimalSymbol, "DECIMAL_SYMBOL"},
	{NumericSymbol, "NUMERIC_SYMBOL"},
	{DateSymbol, "DATE_SYMBOL"},
	{TimeSymbol, "TIME_SYMBOL"},
	{TimestampSymbol, "TIMESTAMP_SYMBOL"},
	{DatetimeSymbol, "DATETIME_SYMBOL"},
	{YearSymbol, "YEAR_SYMBOL"},
	{CharSymbol, "CHAR_SYMBOL"},
	{VarcharSymbol, "VARCHAR_SYMBOL"},
	{BinarySymbol, "BINARY_SYMBOL"},
	{VarbinarySymbol, "VARBINARY_SYMBOL"},
	{TinyblobSymbol, "TINYBLOB_SYMBOL"},
	{BlobSymbol, "BLOB_SYMBOL"},
	{MediumblobSymbol, "MEDIUMBLOB_SYMBOL"},
	{LongblobSymbol, "LONGBLOB_SYMBOL"},
	{TinytextSymbol, "TINYTEXT_SYMBOL"},
	{TextSymbol, "TEXT_SYMBOL"},
	{MediumtextSymbol, "MEDIUMTEXT_SYMBOL"},
	{LongtextSymbol, "LONGTEXT_SYMBOL"},
	{EnumSymbol, "ENUM_SYMBOL"},
	{SetSymbol, "SET_SYMBOL"},
	{JSONSymbol, "JSON_SYMBOL"},
	{GeometrySymbol, "GEOMETRY_SYMBOL"},
	{PointSymbol, "POINT_SYMBOL"},
	{LinestringSymbol, "LINESTRING_SYMBOL"},
	{PolygonSymbol, "POLYGON_SYMBOL"},
	{GeometrycollectionSymbol, "GEOMETRYCOLLECTION_SYMBOL"},
	{MultipointSymbol, "MULTIPOINT_SYMBOL"},
	{MultilinestringSymbol, "MULTILINESTRING_SYMBOL"},
	{MultipolygonSymbol, "MULTIPOLYGON_SYMBOL"},
	{AccessibleSymbol, "ACCESSIBLE_SYMBOL"},
	{AccountSymbol, "ACCOUNT_SYMBOL"},
	{ActionSymbol, "ACTION_SYMBOL"},
	{AddSymbol, "ADD_SYMBOL"},
	{AfterSymbol, "AFTER_SYMBOL"},
	{AgainstSymbol, "AGAINST_SYMBOL"},
	{AggregateSymbol, "AGGREGATE_SYMBOL"},
	{AlgorithmSymbol, "ALGORITHM_SYMBOL"},
	{AllSymbol, "ALL_SYMBOL"},
	{AlterSymbol, "ALTER_SYMBOL"},
	{AlwaysSymbol, "ALWAYS_SYMBOL"},
	{AnalyseSymbol, "ANALYSE_SYMBOL"},
	{AnalyzeSymbol, "ANALYZE_SYMBOL"},
	{AndSymbol, "AND_SYMBOL"},
	{AnySymbol, "ANY_SYMBOL"},
	{AsSymbol, "AS_SYMBOL"},
	{AscSymbol, "ASC_SYMBOL"},
	{AsensitiveSymbol, "ASENSITIVE_SYMBOL"},
	{AtSymbol, "AT_SYMBOL"},
	{AutoextendSizeSymbol, "AUTOEXTEND_SIZE_SYMBOL"},
	{AutoIncrementSymbol, "AUTO_INCREMENT_SYMBOL"},
	{AvgRowLengthSymbol, "AVG_ROW_LENGTH_SYMBOL"},
	{AvgSymbol, "AVG_SYMBOL"},
	{BackupSymbol, "BACKUP_SYMBOL"},
	{BeforeSymbol, "BEFORE_SYMBOL"},
	{BeginSymbol, "BEGIN_SYMBOL"},
	{BetweenSymbol, "BETWEEN_SYMBOL"},
	{BinlogSymbol, "BINLOG_SYMBOL"},
	{BitAndSymbol, "BIT_AND_SYMBOL"},
	{BitOrSymbol, "BIT_OR_SYMBOL"},
	{BitXorSymbol, "BIT_XOR_SYMBOL"},
	{BlockSymbol, "BLOCK_SYMBOL"},
	{BoolSymbol, "BOOL_SYMBOL"},
	{BooleanSymbol, "BOOLEAN_SYMBOL"},
	{BothSymbol, "BOTH_SYMBOL"},
	{BtreeSymbol, "BTREE_SYMBOL"},
	{BySymbol, "BY_SYMBOL"},
	{ByteSymbol, "BYTE_SYMBOL"},
	{CacheSymbol, "CACHE_SYMBOL"},
	{CallSymbol, "CALL_SYMBOL"},
	{CascadeSymbol, "CASCADE_SYMBOL"},
	{CascadedSymbol, "CASCADED_SYMBOL"},
	{CaseSymbol, "CASE_SYMBOL"},
	{CastSymbol, "CAST_SYMBOL"},
	{CatalogNameSymbol, "CATALOG_NAME_SYMBOL"},
	{ChainSymbol, "CHAIN_SYMBOL"},
	{ChangeSymbol, "CHANGE_SYMBOL"},
	{ChangedSymbol, "CHANGED_SYMBOL"},
	{ChannelSymbol, "CHANNEL_SYMBOL"},
	{CharsetSymbol, "CHARSET_SYMBOL"},
	{CharacterSymbol, "CHARACTER_SYMBOL"},
	{CheckSymbol, "CHECK_SYMBOL"},
	{ChecksumSymbol, "CHECKSUM_SYMBOL"},
	{CipherSymbol, "CIPHER_SYMBOL"},
	{ClassOriginSymbol, "CLASS_ORIGIN_SYMBOL"},
	{ClientSymbol, "CLIENT_SYMBOL"},
	{CloseSymbol, "CLOSE_SYMBOL"},
	{CoalesceSymbol, "COALESCE_SYMBOL"},
	{CodeSymbol, "CODE_SYMBOL"},
	{CollateSymbol, "COLLATE_SYMBOL"},
	{CollationSymbol, "COLLATION_SYMBOL"},
	{ColumnFormatSymbol, "COLUMN_FORMAT_SYMBOL"},
	{ColumnNameSymbol, "COLUMN_NAME_SYMBOL"},
	{ColumnsSymbol, "COLUMNS_SYMBOL"},
	{ColumnSymbol, "COLUMN_SYMBOL"},
	{CommentSymbol, "COMMENT_SYMBOL"},
	{CommittedSymbol, "COMMITTED_SYMBOL"},
	{CommitSymbol, "COMMIT_SYMBOL"},
	{CompactSymbol, "COMPACT_SYMBOL"},
	{CompletionSymbol, "COMPLETION_SYMBOL"},
	{CompressedSymbol, "COMPRESSED_SYMBOL"},
	{CompressionSymbol, "COMPRESSION_SYMBOL"},
	{ConcurrentSymbol, "CONCURRENT_SYMBOL"},
	{ConditionSymbol, "CONDITION_SYMBOL"},
	{ConnectionSymbol, "CONNECTION_SYMBOL"},
	{ConsistentSymbol, "CONSISTENT_SYMBOL"},
	{ConstraintSymbol, "CONSTRAINT_SYMBOL"},
	{ConstraintCatalogSymbol, "CONSTRAINT_CATALOG_SYMBOL"},
	{ConstraintNameSymbol, "CONSTRAINT_NAME_SYMBOL"},
	{ConstraintSchemaSymbol, "CONSTRAINT_SCHEMA_SYMBOL"},
	{ContainsSymbol, "CONTAINS_SYMBOL"},
	{ContextSymbol, "CONTEXT_SYMBOL"},
	{ContinueSymbol, "CONTINUE_SYMBOL"},
	{ContributorsSymbol, "CONTRIBUTORS_SYMBOL"},
	{ConvertSymbol, "CONVERT_SYMBOL"},
	{CountSymbol, "COUNT_SYMBOL"},
	{CPUSymbol, "CPU_SYMBOL"},
	{CreateSymbol, "CREATE_SYMBOL"},
	{CrossSymbol, "CROSS_SYMBOL"},
	{CubeSymbol, "CUBE_SYMBOL"},
	{CurdateSymbol, "CURDATE_SYMBOL"},
	{CurrentDateSymbol, "CURRENT_DATE_SYMBOL"},
	{CurrentTimeSymbol, "CURRENT_TIME_SYMBOL"},
	{CurrentTimestampSymbol, "CURRENT_TIMESTAMP_SYMBOL"},
	{CurrentUserSymbol, "CURRENT_USER_SYMBOL"},
	{CurrentSymbol, "CURRENT_SYMBOL"},
	{CursorSymbol, "CURSOR_SYMBOL"},
	{CursorNameSymbol, "CURSOR_NAME_SYMBOL"},
	{CurtimeSymbol, "CURTIME_SYMBOL"},
	{DatabaseSymbol, "DATABASE_SYMBOL"},
	{DatabasesSymbol, "DATABASES_SYMBOL"},
	{DatafileSymbol, "DATAFILE_SYMBOL"},
	{DataSymbol, "DATA_SYMBOL"},
	{DateAddSymbol, "DATE_ADD_SYMBOL"},
	{DateSubSymbol, "DATE_SUB_SYMBOL"},
	{DayHourSymbol, "DAY_HOUR_SYMBOL"},
	{DayMicrosecondSymbol, "DAY_MICROSECOND_SYMBOL"},
	{DayMinuteSymbol, "DAY_MINUTE_SYMBOL"},
	{DaySecondSymbol, "DAY_SECOND_SYMBOL"},
	{DaySymbol, "DAY_SYMBOL"},
	{DayofmonthSymbol, "DAYOFMONTH_SYMBOL"},
	{DeallocateSymbol, "DEALLOCATE_SYMBOL"},
	{DecSymbol, "DEC_SYMBOL"},
	{DeclareSymbol, "DECLARE_SYMBOL"},
	{DefaultSymbol, "DEFAULT_SYMBOL"},
	{DefaultAuthSymbol, "DEFAULT_AUTH_SYMBOL"},
	{DefinerSymbol, "DEFINER_SYMBOL"},
	{DelayedSymbol, "DELAYED_SYMBOL"},
	{DelayKeyWriteSymbol, "DELAY_KEY_WRITE_SYMBOL"},
	{DeleteSymbol, "DELETE_SYMBOL"},
	{DescSymbol, "DESC_SYMBOL"},
	{DescribeSymbol, "DESCRIBE_SYMBOL"},
	{DesKeyFileSymbol, "DES_KEY_FILE_SYMBOL"},
	{DeterministicSymbol, "DETERMINISTIC_SYMBOL"},
	{DiagnosticsSymbol, "DIAGNOSTICS_SYMBOL"},
	{DirectorySymbol, "DIRECTORY_SYMBOL"},
	{DisableSymbol, "DISABLE_SYMBOL"},
	{DiscardSymbol, "DISCARD_SYMBOL"},
	{DiskSymbol, "DISK_SYMBOL"},
	{DistinctSymbol, "DISTINCT_SYMBOL"},
	{DistinctrowSymbol, "DISTINCTROW_SYMBOL"},
	{DivSymbol, "DIV_SYMBOL"},
	{DoSymbol, "DO_SYMBOL"},
	{DropSymbol, "DROP_SYMBOL"},
	{DualSymbol, "DUAL_SYMBOL"},
	{DumpfileSymbol, "DUMPFILE_SYMBOL"},
	{DuplicateSymbol, "DUPLICATE_SYMBOL"},
	{DynamicSymbol, "DYNAMIC_SYMBOL"},
	{EachSymbol, "EACH_SYMBOL"},
	{ElseSymbol, "ELSE_SYMBOL"},
	{ElseifSymbol, "ELSEIF_SYMBOL"},
	{EmptySymbol, "EMPTY_SYMBOL"},
	{EnableSymbol, "ENABLE_SYMBOL"},
	{EnclosedSymbol, "ENCLOSED_SYMBOL"},
	{EncryptionSymbol, "ENCRYPTION_SYMBOL"},
	{EndSymbol, "END_SYMBOL"},
	{EndsSymbol, "ENDS_SYMBOL"},
	{EnforcedSymbol, "ENFORCED_SYMBOL"},
	{EnginesSymbol, "ENGINES_SYMBOL"},
	{EngineSymbol, "ENGINE_SYMBOL"},
	{ErrorSymbol, "ERROR_SYMBOL"},
	{ErrorsSymbol, "ERRORS_SYMBOL"},
	{EscapedSymbol, "ESCAPED_SYMBOL"},
	{EscapeSymbol, "ESCAPE_SYMBOL"},
	{EventSymbol, "EVENT_SYMBOL"},
	{EventsSymbol, "EVENTS_SYMBOL"},
	{EverySymbol, "EVERY_SYMBOL"},
	{ExchangeSymbol, "EXCHANGE_SYMBOL"},
	{ExceptSymbol, "EXCEPT_SYMBOL"},
	{ExecuteSymbol, "EXECUTE_SYMBOL"},
	{ExistsSymbol, "EXISTS_SYMBOL"},
	{ExitSymbol, "EXIT_SYMBOL"},
	{ExpansionSymbol, "EXPANSION_SYMBOL"},
	{ExpireSymbol, "EXPIRE_SYMBOL"},
	{ExplainSymbol, "EXPLAIN_SYMBOL"},
	{ExportSymbol, "EXPORT_SYMBOL"},
	{ExtendedSymbol, "EXTENDED_SYMBOL"},
	{ExtentSizeSymbol, "EXTENT_SIZE_SYMBOL"},
	{ExtractSymbol, "EXTRACT_SYMBOL"},
	{FalseSymbol, "FALSE_SYMBOL"},
	{FastSymbol, "FAST_SYMBOL"},
	{FaultsSymbol, "FAULTS_SYMBOL"},
	{FetchSymbol, "FETCH_SYMBOL"},
	{FieldsSymbol, "FIELDS_SYMBOL"},
	{FileBlockSizeSymbol, "FILE_BLOCK_SIZE_SYMBOL"},
	{FileSymbol, "FILE_SYMBOL"},
	{FilterSymbol, "FILTER_SYMBOL"},
	{FirstSymbol, "FIRST_SYMBOL"},
	{FirstValueSymbol, "FIRST_VALUE_SYMBOL"},
	{FixedSymbol, "FIXED_SYMBOL"},
	{Float4Symbol, "FLOAT4_SYMBOL"},
	{Float8Symbol, "FLOAT8_SYMBOL"},
	{FlushSymbol, "FLUSH_SYMBOL"},
	{FollowsSymbol, "FOLLOWS_SYMBOL"},
	{ForceSymbol, "FORCE_SYMBOL"},
	{ForeignSymbol, "FOREIGN_SYMBOL"},
	{ForSymbol, "FOR_SYMBOL"},
	{FormatSymbol, "FORMAT_SYMBOL"},
	{FoundSymbol, "FOUND_SYMBOL"},
	{FromSymbol, "FROM_SYMBOL"},
	{FulltextSymbol, "FULLTEXT_SYMBOL"},
	{FullSymbol, "FULL_SYMBOL"},
	{FunctionSymbol, "FUNCTION_SYMBOL"},
	{GeneratedSymbol, "GENERATED_SYMBOL"},
	{GeneralSymbol, "GENERAL_SYMBOL"},
	{GetFormatSymbol, "GET_FORMAT_SYMBOL"},
	{GetMasterPublicKeySymbol, "GET_MASTER_PUBLIC_KEY_SYMBOL"},
	{GlobalSymbol, "GLOBAL_SYMBOL"},
	{GrantSymbol, "GRANT_SYMBOL"},
	{GrantsSymbol, "GRANTS_SYMBOL"},
	{GroupConcatSymbol, "GROUP_CONCAT_SYMBOL"},
	{GroupReplicationSymbol, "GROUP_REPLICATION_SYMBOL"},
	{GroupSymbol, "GROUP_SYMBOL"},
	{HandlerSymbol, "HANDLER_SYMBOL"},
	{HashSymbol, "HASH_SYMBOL"},
	{HavingSymbol, "HAVING_SYMBOL"},
	{HelpSymbol, "HELP_SYMBOL"},
	{HighPrioritySymbol, "HIGH_PRIORITY_SYMBOL"},
	{HistogramSymbol, "HISTOGRAM_SYMBOL"},
	{HistorySymbol, "HISTORY_SYMBOL"},
	{HostSymbol, "HOST_SYMBOL"},
	{HostsSymbol, "HOSTS_SYMBOL"},
	{HourMicrosecondSymbol, "HOUR_MICROSECOND_SYMBOL"},
	{HourMinuteSymbol, "HOUR_MINUTE_SYMBOL"},
	{HourSecondSymbol, "HOUR_SECOND_SYMBOL"},
	{HourSymbol, "HOUR_SYMBOL"},
	{IdentifiedSymbol, "IDENTIFIED_SYMBOL"},
	{IfSymbol, "IF_SYMBOL"},
	{IgnoreSymbol, "IGNORE_SYMBOL"},
	{IgnoreServerIdsSymbol, "IGNORE_SERVER_IDS_SYMBOL"},
	{ImportSymbol, "IMPORT_SYMBOL"},
	{InSymbol, "IN_SYMBOL"},
	{IndexesSymbol, "INDEXES_SYMBOL"},
	{IndexSymbol, "INDEX_SYMBOL"},
	{InfileSymbol, "INFILE_SYMBOL"},
	{InitialSizeSymbol, "INITIAL_SIZE_SYMBOL"},
	{InnerSymbol, "INNER_SYMBOL"},
	{InoutSymbol, "INOUT_SYMBOL"},
	{InsensitiveSymbol, "INSENSITIVE_SYMBOL"},
	{InsertSymbol, "INSERT_SYMBOL"},
	{InsertMethodSymbol, "INSERT_METHOD_SYMBOL"},
	{InstanceSymbol, "INSTANCE_SYMBOL"},
	{InstallSymbol, "INSTALL_SYMBOL"},
	{IntegerSymbol, "INTEGER_SYMBOL"},
	{IntervalSymbol, "INTERVAL_SYMBOL"},
	{IntoSymbol, "INTO_SYMBOL"},
	{InvisibleSymbol, "INVISIBLE_SYMBOL"},
	{InvokerSymbol, "INVOKER_SYMBOL"},
	{IOSymbol, "IO_SYMBOL"},
	{IPCSymbol, "IPC_SYMBOL"},
	{IsSymbol, "IS_SYMBOL"},
	{IsolationSymbol, "ISOLATION_SYMBOL"},
	{IssuerSymbol, "ISSUER_SYMBOL"},
	{IterateSymbol, "ITERATE_SYMBOL"},
	{JoinSymbol, "JOIN_SYMBOL"},
	{JSONTableSymbol, "JSON_TABLE_SYMBOL"},
	{JSONArrayaggSymbol, "JSON_ARRAYAGG_SYMBOL"},
	{JSONObjectaggSymbol, "JSON_OBJECTAGG_SYMBOL"},
	{KeysSymbol, "KEYS_SYMBOL"},
	{KeyBlockSizeSymbol, "KEY_BLOCK_SIZE_SYMBOL"},
	{KeySymbol, "KEY_SYMBOL"},
	{KillSymbol, "KILL_SYMBOL"},
	{LanguageSymbol, "LANGUAGE_SYMBOL"},
	{LastSymbol, "LAST_SYMBOL"},
	{LastValueSymbol, "LAST_VALUE_SYMBOL"},
	{LateralSymbol, "LATERAL_SYMBOL"},
	{LeadSymbol, "LEAD_SYMBOL"},
	{LeadingSymbol, "LEADING_SYMBOL"},
	{LeaveSymbol, "LEAVE_SYMBOL"},
	{LeavesSymbol, "LEAVES_SYMBOL"},
	{LeftSymbol, "LEFT_SYMBOL"},
	{LessSymbol, "LESS_SYMBOL"},
	{LevelSymbol, "LEVEL_SYMBOL"},
	{LikeSymbol, "LIKE_SYMBOL"},
	{LimitSymbol, "LIMIT_SYMBOL"},
	{LinearSymbol, "LINEAR_SYMBOL"},
	{LinesSymbol, "LINES_SYMBOL"},
	{ListSymbol, "LIST_SYMBOL"},
	{LoadSymbol, "LOAD_SYMBOL"},
	{LocaltimeSymbol, "LOCALTIME_SYMBOL"},
	{LocaltimestampSymbol, "LOCALTIMESTAMP_SYMBOL"},
	{LocalSymbol, "LOCAL_SYMBOL"},
	{LocatorSymbol, "LOCATOR_SYMBOL"},
	{LockSymbol, "LOCK_SYMBOL"},
	{LocksSymbol, "LOCKS_SYMBOL"},
	{LogfileSymbol, "LOGFILE_SYMBOL"},
	{LogsSymbol, "LOGS_SYMBOL"},
	{LoopSymbol, "LOOP_SYMBOL"},
	{LowPrioritySymbol, "LOW_PRIORITY_SYMBOL"},
	{MasterSymbol, "MASTER_SYMBOL"},
	{MasterAutoPositionSymbol, "MASTER_AUTO_POSITION_SYMBOL"},
	{MasterBindSymbol, "MASTER_BIND_SYMBOL"},
	{MasterConnectRetrySymbol, "MASTER_CONNECT_RETRY_SYMBOL"},
	{MasterDelaySymbol, "MASTER_DELAY_SYMBOL"},
	{MasterHeartbeatPeriodSymbol, "MASTER_HEARTBEAT_PERIOD_SYMBOL"},
	{MasterHostSymbol, "MASTER_HOST_SYMBOL"},
	{NetworkNamespaceSymbol, "NETWORK_NAMESPACE_SYMBOL"},
	{MasterLogFileSymbol, "MASTER_LOG_FILE_SYMBOL"},
	{MasterLogPosSymbol, "MASTER_LOG_POS_SYMBOL"},
	{MasterPasswordSymbol, "MASTER_PASSWORD_SYMBOL"},
	{MasterPortSymbol, "MASTER_PORT_SYMBOL"},
	{MasterPublicKeyPathSymbol, "MASTER_PUBLIC_KEY_PATH_SYMBOL"},
	{MasterRetryCountSymbol, "MASTER_RETRY_COUNT_SYMBOL"},
	{MasterServerIDSymbol, "MASTER_SERVER_ID_SYMBOL"},
	{MasterSSLCapathSymbol, "MASTER_SSL_CAPATH_SYMBOL"},
	{MasterSSLCaSymbol, "MASTER_SSL_CA_SYMBOL"},
	{MasterSSLCertSymbol, "MASTER_SSL_CERT_SYMBOL"},
	{MasterSSLCipherSymbol, "MASTER_SSL_CIPHER_SYMBOL"},
	{MasterSSLCrlSymbol, "MASTER_SSL_CRL_SYMBOL"},
	{MasterSSLCrlpathSymbol, "MASTER_SSL_CRLPATH_SYMBOL"},
	{MasterSSLKeySymbol, "MASTER_SSL_KEY_SYMBOL"},
	{MasterSSLSymbol, "MASTER_SSL_SYMBOL"},
	{MasterSSLVerifyServerCertSymbol, "MASTER_SSL_VERIFY_SERVER_CERT_SYMBOL"},
	{MasterTLSVersionSymbol, "MASTER_TLS_VERSION_SYMBOL"},
	{MasterTLSCiphersuitesSymbol, "MASTER_TLS_CIPHERSUITES_SYMBOL"},
	{MasterUserSymbol, "MASTER_USER_SYMBOL"},
	{MasterZstdCompressionLevelSymbol, "MASTER_ZSTD_COMPRESSION_LEVEL_SYMBOL"},
	{MatchSymbol, "MATCH_SYMBOL"},
	{MaxConnectionsPerHourSymbol, "MAX_CONNECTIONS_PER_HOUR_SYMBOL"},
	{MaxQueriesPerHourSymbol, "MAX_QUERIES_PER_HOUR_SYMBOL"},
	{MaxRowsSymbol, "MAX_ROWS_SYMBOL"},
	{MaxSizeSymbol, "MAX_SIZE_SYMBOL"},
	{MaxStatementTimeSymbol, "MAX_STATEMENT_TIME_SYMBOL"},
	{MaxUpdatesPerHourSymbol, "MAX_UPDATES_PER_HOUR_SYMBOL"},
	{MaxUserConnectionsSymbol, "MAX_USER_CONNECTIONS_SYMBOL"},
	{MaxvalueSymbol, "MAXVALUE_SYMBOL"},
	{MaxSymbol, "MAX_SYMBOL"},
	{MediumSymbol, "MEDIUM_SYMBOL"},
	{MemberSymbol, "MEMBER_SYMBOL"},
	{MemorySymbol, "MEMORY_SYMBOL"},
	{MergeSymbol, "MERGE_SYMBOL"},
	{MessageTextSymbol, "MESSAGE_TEXT_SYMBOL"},
	{MicrosecondSymbol, "MICROSECOND_SYMBOL"},
	{MiddleintSymbol, "MIDDLEINT_SYMBOL"},
	{MigrateSymbol, "MIGRATE_SYMBOL"},
	{MinuteMicrosecondSymbol, "MINUTE_MICROSECOND_SYMBOL"},
	{MinuteSecondSymbol, "MINUTE_SECOND_SYMBOL"},
	{MinuteSymbol, "MINUTE_SYMBOL"},
	{MinRowsSymbol, "MIN_ROWS_SYMBOL"},
	{MinSymbol, "MIN_SYMBOL"},
	{ModeSymbol, "MODE_SYMBOL"},
	{ModifiesSymbol, "MODIFIES_SYMBOL"},
	{ModifySymbol, "MODIFY_SYMBOL"},
	{ModSymbol, "MOD_SYMBOL"},
	{MonthSymbol, "MONTH_SYMBOL"},
	{MutexSymbol, "MUTEX_SYMBOL"},
	{MysqlErrnoSymbol, "MYSQL_ERRNO_SYMBOL"},
	{NameSymbol, "NAME_SYMBOL"},
	{NamesSymbol, "NAMES_SYMBOL"},
	{NationalSymbol, "NATIONAL_SYMBOL"},
	{NaturalSymbol, "NATURAL_SYMBOL"},
	{NcharSymbol, "NCHAR_SYMBOL"},
	{NdbclusterSymbol, "NDBCLUSTER_SYMBOL"},
	{NdbSymbol, "NDB_SYMBOL"},
	{NegSymbol, "NEG_SYMBOL"},
	{NestedSymbol, "NESTED_SYMBOL"},
	{NeverSymbol, "NEVER_SYMBOL"},
	{NewSymbol, "NEW_SYMBOL"},
	{NextSymbol, "NEXT_SYMBOL"},
	{NodegroupSymbol, "NODEGROUP_SYMBOL"},
	{NoneSymbol, "NONE_SYMBOL"},
	{NonblockingSymbol, "NONBLOCKING_SYMBOL"},
	{NotSymbol, "NOT_SYMBOL"},
	{NowaitSymbol, "NOWAIT_SYMBOL"},
	{NoWaitSymbol, "NO_WAIT_SYMBOL"},
	{NoWriteToBinlogSymbol, "NO_WRITE_TO_BINLOG_SYMBOL"},
	{NullSymbol, "NULL_SYMBOL"},
	{NullsSymbol, "NULLS_SYMBOL"},
	{NumberSymbol, "NUMBER_SYMBOL"},
	{NvarcharSymbol, "NVARCHAR_SYMBOL"},
	{NthValueSymbol, "NTH_VALUE_SYMBOL"},
	{NtileSymbol, "NTILE_SYMBOL"},
	{OfSymbol, "OF_SYMBOL"},
	{OffSymbol, "OFF_SYMBOL"},
	{OfflineSymbol, "OFFLINE_SYMBOL"},
	{OffsetSymbol, "OFFSET_SYMBOL"},
	{OjSymbol, "OJ_SYMBOL"},
	{OldPasswordSymbol, "OLD_PASSWORD_SYMBOL"},
	{OldSymbol, "OLD_SYMBOL"},
	{OnSymbol, "ON_SYMBOL"},
	{OnlineSymbol, "ONLINE_SYMBOL"},
	{OneSymbol, "ONE_SYMBOL"},
	{OnlySymbol, "ONLY_SYMBOL"},
	{OpenSymbol, "OPEN_SYMBOL"},
	{OptionalSymbol, "OPTIONAL_SYMBOL"},
	{OptionallySymbol, "OPTIONALLY_SYMBOL"},
	{OptionsSymbol, "OPTIONS_SYMBOL"},
	{OptionSymbol, "OPTION_SYMBOL"},
	{OptimizeSymbol, "OPTIMIZE_SYMBOL"},
	{OptimizerCostsSymbol, "OPTIMIZER_COSTS_SYMBOL"},
	{OrderSymbol, "ORDER_SYMBOL"},
	{OrdinalitySymbol, "ORDINALITY_SYMBOL"},
	{OrganizationSymbol, "ORGANIZATION_SYMBOL"},
	{OrSymbol, "OR_SYMBOL"},
	{OthersSymbol, "OTHERS_SYMBOL"},
	{OuterSymbol, "OUTER_SYMBOL"},
	{OutfileSymbol, "OUTFILE_SYMBOL"},
	{OutSymbol, "OUT_SYMBOL"},
	{OwnerSymbol, "OWNER_SYMBOL"},
	{PackKeysSymbol, "PACK_KEYS_SYMBOL"},
	{PageSymbol, "PAGE_SYMBOL"},
	{ParserSymbol, "PARSER_SYMBOL"},
	{PartialSymbol, "PARTIAL_SYMBOL"},
	{PartitioningSymbol, "PARTITIONING_SYMBOL"},
	{PartitionsSymbol, "PARTITIONS_SYMBOL"},
	{PartitionSymbol, "PARTITION_SYMBOL"},
	{PasswordSymbol, "PASSWORD_SYMBOL"},
	{PathSymbol, "PATH_SYMBOL"},
	{PercentRankSymbol, "PERCENT_RANK_SYMBOL"},
	{PersistSymbol, "PERSIST_SYMBOL"},
	{PersistOnlySymbol, "PERSIST_ONLY_SYMBOL"},
	{PhaseSymbol, "PHASE_SYMBOL"},
	{PluginSymbol, "PLUGIN_SYMBOL"},
	{PluginsSymbol, "PLUGINS_SYMBOL"},
	{PluginDirSymbol, "PLUGIN_DIR_SYMBOL"},
	{PortSymbol, "PORT_SYMBOL"},
	{PositionSymbol, "POSITION_SYMBOL"},
	{PrecedesSymbol, "PRECEDES_SYMBOL"},
	{PrecedingSymbol, "PRECEDING_SYMBOL"},
	{PrecisionSymbol, "PRECISION_SYMBOL"},
	{PrepareSymbol, "PREPARE_SYMBOL"},
	{PreserveSymbol, "PRESERVE_SYMBOL"},
	{PrevSymbol, "PREV_SYMBOL"},
	{PrimarySymbol, "PRIMARY_SYMBOL"},
	{PrivilegesSymbol, "PRIVILEGES_SYMBOL"},
	{PrivilegeChecksUserSymbol, "PRIVILEGE_CHECKS_USER_SYMBOL"},
	{ProcedureSymbol, "PROCEDURE_SYMBOL"},
	{ProcessSymbol, "PROCESS_SYMBOL"},
	{ProcesslistSymbol, "PROCESSLIST_SYMBOL"},
	{ProfilesSymbol, "PROFILES_SYMBOL"},
	{ProfileSymbol, "PROFILE_SYMBOL"},
	{ProxySymbol, "PROXY_SYMBOL"},
	{PurgeSymbol, "PURGE_SYMBOL"},
	{QuarterSymbol, "QUARTER_SYMBOL"},
	{QuerySymbol, "QUERY_SYMBOL"},
	{QuickSymbol, "QUICK_SYMBOL"},
	{RandomSymbol, "RANDOM_SYMBOL"},
	{RangeSymbol, "RANGE_SYMBOL"},
	{RankSymbol, "RANK_SYMBOL"},
	{ReadsSymbol, "READS_SYMBOL"},
	{ReadOnlySymbol, "READ_ONLY_SYMBOL"},
	{ReadSymbol, "READ_SYMBOL"},
	{ReadWriteSymbol, "READ_WRITE_SYMBOL"},
	{RebuildSymbol, "REBUILD_SYMBOL"},
	{RecoverSymbol, "RECOVER_SYMBOL"},
	{RedofileSymbol, "REDOFILE_SYMBOL"},
	{RedoBufferSizeSymbol, "REDO_BUFFER_SIZE_SYMBOL"},
	{RedundantSymbol, "REDUNDANT_SYMBOL"},
	{ReferencesSymbol, "REFERENCES_SYMBOL"},
	{RecursiveSymbol, "RECURSIVE_SYMBOL"},
	{RegexpSymbol, "REGEXP_SYMBOL"},
	{RelaylogSymbol, "RELAYLOG_SYMBOL"},
	{RelaySymbol, "RELAY_SYMBOL"},
	{RelayLogFileSymbol, "RELAY_LOG_FILE_SYMBOL"},
	{RelayLogPosSymbol, "RELAY_LOG_POS_SYMBOL"},
	{RelayThreadSymbol, "RELAY_THREAD_SYMBOL"},
	{ReleaseSymbol, "RELEASE_SYMBOL"},
	{ReloadSymbol, "RELOAD_SYMBOL"},
	{RemoteSymbol, "REMOTE_SYMBOL"},
	{RemoveSymbol, "REMOVE_SYMBOL"},
	{RenameSymbol, "RENAME_SYMBOL"},
	{ReorganizeSymbol, "REORGANIZE_SYMBOL"},
	{RepairSymbol, "REPAIR_SYMBOL"},
	{RepeatSymbol, "REPEAT_SYMBOL"},
	{RepeatableSymbol, "REPEATABLE_SYMBOL"},
	{ReplaceSymbol, "REPLACE_SYMBOL"},
	{ReplicationSymbol, "REPLICATION_SYMBOL"},
	{ReplicateDoDBSymbol, "REPLICATE_DO_DB_SYMBOL"},
	{ReplicateIgnoreDBSymbol, "REPLICATE_IGNORE_DB_SYMBOL"},
	{ReplicateDoTableSymbol, "REPLICATE_DO_TABLE_SYMBOL"},
	{ReplicateIgnoreTableSymbol, "REPLICATE_IGNORE_TABLE_SYMBOL"},
	{ReplicateWildDoTableSymbol, "REPLICATE_WILD_DO_TABLE_SYMBOL"},
	{ReplicateWildIgnoreTableSymbol, "REPLICATE_WILD_IGNORE_TABLE_SYMBOL"},
	{ReplicateRewriteDBSymbol, "REPLICATE_REWRITE_DB_SYMBOL"},
	{RequireSymbol, "REQUIRE_SYMBOL"},
	{RequireRowFormatSymbol, "REQUIRE_ROW_FORMAT_SYMBOL"},
	{RequireTablePrimaryKeyCheckSymbol, "REQUIRE_TABLE_PRIMARY_KEY_CHECK_SYMBOL"},
	{ResetSymbol, "RESET_SYMBOL"},
	{ResignalSymbol, "RESIGNAL_SYMBOL"},
	{ResourceSymbol, "RESOURCE_SYMBOL"},
	{RespectSymbol, "RESPECT_SYMBOL"},
	{RestartSymbol, "RESTART_SYMBOL"},
	{RestoreSymbol, "RESTORE_SYMBOL"},
	{RestrictSymbol, "RESTRICT_SYMBOL"},
	{ResumeSymbol, "RESUME_SYMBOL"},
	{RetainSymbol, "RETAIN_SYMBOL"},
	{ReturnedSqlstateSymbol, "RETURNED_SQLSTATE_SYMBOL"},
	{ReturnsSymbol, "RETURNS_SYMBOL"},
	{ReuseSymbol, "REUSE_SYMBOL"},
	{ReverseSymbol, "REVERSE_SYMBOL"},
	{RevokeSymbol, "REVOKE_SYMBOL"},
	{RightSymbol, "RIGHT_SYMBOL"},
	{RlikeSymbol, "RLIKE_SYMBOL"},
	{RoleSymbol, "ROLE_SYMBOL"},
	{RollbackSymbol, "ROLLBACK_SYMBOL"},
	{RollupSymbol, "ROLLUP_SYMBOL"},
	{RotateSymbol, "ROTATE_SYMBOL"},
	{RowSymbol, "ROW_SYMBOL"},
	{RowsSymbol, "ROWS_SYMBOL"},
	{RowCountSymbol, "ROW_COUNT_SYMBOL"},
	{RowFormatSymbol, "ROW_FORMAT_SYMBOL"},
	{RowNumberSymbol, "ROW_NUMBER_SYMBOL"},
	{RtreeSymbol, "RTREE_SYMBOL"},
	{SavepointSymbol, "SAVEPOINT_SYMBOL"},
	{SchemaSymbol, "SCHEMA_SYMBOL"},
	{SchemasSymbol, "SCHEMAS_SYMBOL"},
	{SchemaNameSymbol, "SCHEMA_NAME_SYMBOL"},
	{ScheduleSymbol, "SCHEDULE_SYMBOL"},
	{SecondMicrosecondSymbol, "SECOND_MICROSECOND_SYMBOL"},
	{SecondSymbol, "SECOND_SYMBOL"},
	{SecondarySymbol, "SECONDARY_SYMBOL"},
	{SecondaryEngineSymbol, "SECONDARY_ENGINE_SYMBOL"},
	{SecondaryLoadSymbol, "SECONDARY_LOAD_SYMBOL"},
	{SecondaryUnloadSymbol, "SECONDARY_UNLOAD_SYMBOL"},
	{SecuritySymbol, "SECURITY_SYMBOL"},
	{SelectSymbol, "SELECT_SYMBOL"},
	{SensitiveSymbol, "SENSITIVE_SYMBOL"},
	{SeparatorSymbol, "SEPARATOR_SYMBOL"},
	{SerializableSymbol, "SERIALIZABLE_SYMBOL"},
	{SerialSymbol, "SERIAL_SYMBOL"},
	{ServerSymbol, "SERVER_SYMBOL"},
	{ServerOptionsSymbol, "SERVER_OPTIONS_SYMBOL"},
	{SessionSymbol, "SESSION_SYMBOL"},
	{SessionUserSymbol, "SESSION_USER_SYMBOL"},
	{SetVarSymbol, "SET_VAR_SYMBOL"},
	{ShareSymbol, "SHARE_SYMBOL"},
	{ShowSymbol, "SHOW_SYMBOL"},
	{ShutdownSymbol, "SHUTDOWN_SYMBOL"},
	{SignalSymbol, "SIGNAL_SYMBOL"},
	{SignedSymbol, "SIGNED_SYMBOL"},
	{SimpleSymbol, "SIMPLE_SYMBOL"},
	{SkipSymbol, "SKIP_SYMBOL"},
	{SlaveSymbol, "SLAVE_SYMBOL"},
	{SlowSymbol, "SLOW_SYMBOL"},
	{SnapshotSymbol, "SNAPSHOT_SYMBOL"},
	{SomeSymbol, "SOME_SYMBOL"},
	{SocketSymbol, "SOCKET_SYMBOL"},
	{SonameSymbol, "SONAME_SYMBOL"},
	{SoundsSymbol, "SOUNDS_SYMBOL"},
	{SourceSymbol, "SOURCE_SYMBOL"},
	{SpatialSymbol, "SPATIAL_SYMBOL"},
	{SQLSymbol, "SQL_SYMBOL"},
	{SqlexceptionSymbol, "SQLEXCEPTION_SYMBOL"},
	{SqlstateSymbol, "SQLSTATE_SYMBOL"},
	{SqlwarningSymbol, "SQLWARNING_SYMBOL"},
	{SQLAfterGTIDSSymbol, "SQL_AFTER_GTIDS_SYMBOL"},
	{SQLAfterMtsGapsSymbol, "SQL_AFTER_MTS_GAPS_SYMBOL"},
	{SQLBeforeGTIDSSymbol, "SQL_BEFORE_GTIDS_SYMBOL"},
	{SQLBigResultSymbol, "SQL_BIG_RESULT_SYMBOL"},
	{SQLBufferResultSymbol, "SQL_BUFFER_RESULT_SYMBOL"},
	{SQLCalcFoundRowsSymbol, "SQL_CALC_FOUND_ROWS_SYMBOL"},
	{SQLCacheSymbol, "SQL_CACHE_SYMBOL"},
	{SQLNoCacheSymbol, "SQL_NO_CACHE_SYMBOL"},
	{SQLSmallResultSymbol, "SQL_SMALL_RESULT_SYMBOL"},
	{SQLThreadSymbol, "SQL_THREAD_SYMBOL"},
	{SQLTsiDaySymbol, "SQL_TSI_DAY_SYMBOL"},
	{SQLTsiHourSymbol, "SQL_TSI_HOUR_SYMBOL"},
	{SQLTsiMicrosecondSymbol, "SQL_TSI_MICROSECOND_SYMBOL"},
	{SQLTsiMinuteSymbol, "SQL_TSI_MINUTE_SYMBOL"},
	{SQLTsiMonthSymbol, "SQL_TSI_MONTH_SYMBOL"},
	{SQLTsiQuarterSymbol, "SQL_TSI_QUARTER_SYMBOL"},
	{SQLTsiSecondSymbol, "SQL_TSI_SECOND_SYMBOL"},
	{SQLTsiWeekSymbol, "SQL_TSI_WEEK_SYMBOL"},
	{SQLTsiYearSymbol, "SQL_TSI_YEAR_SYMBOL"},
	{SridSymbol, "SRID_SYMBOL"},
	{SSLSymbol, "SSL_SYMBOL"},
	{StackedSymbol, "STACKED_SYMBOL"},
	{StartingSymbol, "STARTING_SYMBOL"},
	{StartsSymbol, "STARTS_SYMBOL"},
	{StatsAutoRecalcSymbol, "STATS_AUTO_RECALC_SYMBOL"},
	{StatsPersistentSymbol, "STATS_PERSISTENT_SYMBOL"},
	{StatsSamplePagesSymbol, "STATS_SAMPLE_PAGES_SYMBOL"},
	{StatusSymbol, "STATUS_SYMBOL"},
	{StdSymbol, "STD_SYMBOL"},
	{StddevPopSymbol, "STDDEV_POP_SYMBOL"},
	{StddevSampSymbol, "STDDEV_SAMP_SYMBOL"},
	{StddevSymbol, "STDDEV_SYMBOL"},
	{StopSymbol, "STOP_SYMBOL"},
	{StorageSymbol, "STORAGE_SYMBOL"},
	{StoredSymbol, "STORED_SYMBOL"},
	{StraightJoinSymbol, "STRAIGHT_JOIN_SYMBOL"},
	{StreamSymbol, "STREAM_SYMBOL"},
	{StringSymbol, "STRING_SYMBOL"},
	{SubclassOriginSymbol, "SUBCLASS_ORIGIN_SYMBOL"},
	{SubdateSymbol, "SUBDATE_SYMBOL"},
	{SubjectSymbol, "SUBJECT_SYMBOL"},
	{SubpartitionsSymbol, "SUBPARTITIONS_SYMBOL"},
	{SubpartitionSymbol, "SUBPARTITION_SYMBOL"},
	{SubstrSymbol, "SUBSTR_SYMBOL"},
	{SubstringSymbol, "SUBSTRING_SYMBOL"},
	{SumSymbol, "SUM_SYMBOL"},
	{SuperSymbol, "SUPER_SYMBOL"},
	{SuspendSymbol, "SUSPEND_SYMBOL"},
	{SwapsSymbol, "SWAPS_SYMBOL"},
	{SwitchesSymbol, "SWITCHES_SYMBOL"},
	{SysdateSymbol, "SYSDATE_SYMBOL"},
	{SystemSymbol, "SYSTEM_SYMBOL"},
	{SystemUserSymbol, "SYSTEM_USER_SYMBOL"},
	{TableSymbol, "TABLE_SYMBOL"},
	{TablesSymbol, "TABLES_SYMBOL"},
	{TablespaceSymbol, "TABLESPACE_SYMBOL"},
	{TableChecksumSymbol, "TABLE_CHECKSUM_SYMBOL"},
	{TableNameSymbol, "TABLE_NAME_SYMBOL"},
	{TemporarySymbol, "TEMPORARY_SYMBOL"},
	{TemptableSymbol, "TEMPTABLE_SYMBOL"},
	{TerminatedSymbol, "TERMINATED_SYMBOL"},
	{ThanSymbol, "THAN_SYMBOL"},
	{ThenSymbol, "THEN_SYMBOL"},
	{ThreadPrioritySymbol, "THREAD_PRIORITY_SYMBOL"},
	{TiesSymbol, "TIES_SYMBOL"},
	{TimestampAddSymbol, "TIMESTAMP_ADD_SYMBOL"},
	{TimestampDiffSymbol, "TIMESTAMP_DIFF_SYMBOL"},
	{ToSymbol, "TO_SYMBOL"},
	{TrailingSymbol, "TRAILING_SYMBOL"},
	{TransactionSymbol, "TRANSACTION_SYMBOL"},
	{TriggerSymbol, "TRIGGER_SYMBOL"},
	{TriggersSymbol, "TRIGGERS_SYMBOL"},
	{TrimSymbol, "TRIM_SYMBOL"},
	{TrueSymbol, "TRUE_SYMBOL"},
	{TruncateSymbol, "TRUNCATE_SYMBOL"},
	{TypesSymbol, "TYPES_SYMBOL"},
	{TypeSymbol, "TYPE_SYMBOL"},
	{UDFReturnsSymbol, "UDF_RETURNS_SYMBOL"},
	{UnboundedSymbol, "UNBOUNDED_SYMBOL"},
	{UncommittedSymbol, "UNCOMMITTED_SYMBOL"},
	{UndefinedSymbol, "UNDEFINED_SYMBOL"},
	{UndoBufferSizeSymbol, "UNDO_BUFFER_SIZE_SYMBOL"},
	{UndofileSymbol, "UNDOFILE_SYMBOL"},
	{UndoSymbol, "UNDO_SYMBOL"},
	{UnicodeSymbol, "UNICODE_SYMBOL"},
	{UnionSymbol, "UNION_SYMBOL"},
	{UniqueSymbol, "UNIQUE_SYMBOL"},
	{UnknownSymbol, "UNKNOWN_SYMBOL"},
	{UninstallSymbol, "UNINSTALL_SYMBOL"},
	{UnsignedSymbol, "UNSIGNED_SYMBOL"},
	{UpdateSymbol, "UPDATE_SYMBOL"},
	{UpgradeSymbol, "UPGRADE_SYMBOL"},
	{UsageSymbol, "USAGE_SYMBOL"},
	{UserResourcesSymbol, "USER_RESOURCES_SYMBOL"},
	{UserSymbol, "USER_SYMBOL"},
	{UseFrmSymbol, "USE_FRM_SYMBOL"},
	{UseSymbol, "USE_SYMBOL"},
	{UsingSymbol, "USING_SYMBOL"},
	{UTCDateSymbol, "UTC_DATE_SYMBOL"},
	{UTCTimeSymbol, "UTC_TIME_SYMBOL"},
	{UTCTimestampSymbol, "UTC_TIMESTAMP_SYMBOL"},
	{ValidationSymbol, "VALIDATION_SYMBOL"},
	{ValueSymbol, "VALUE_SYMBOL"},
	{ValuesSymbol, "VALUES_SYMBOL"},
	{VarcharacterSymbol, "VARCHARACTER_SYMBOL"},
	{VariablesSymbol, "VARIABLES_SYMBOL"},
	{VarianceSymbol, "VARIANCE_SYMBOL"},
	{VaryingSymbol, "VARYING_SYMBOL"},
	{VarPopSymbol, "VAR_POP_SYMBOL"},
	{VarSampSymbol, "VAR_SAMP_SYMBOL"},
	{VcpuSymbol, "VCPU_SYMBOL"},
	{ViewSymbol, "VIEW_SYMBOL"},
	{VirtualSymbol, "VIRTUAL_SYMBOL"},
	{VisibleSymbol, "VISIBLE_SYMBOL"},
	{WaitSymbol, "WAIT_SYMBOL"},
	{WarningsSymbol, "WARNINGS_SYMBOL"},
	{WeekSymbol, "WEEK_SYMBOL"},
	{WhenSymbol, "WHEN_SYMBOL"},
	{WeightStringSymbol, "WEIGHT_STRING_SYMBOL"},
	{WhereSymbol, "WHERE_SYMBOL"},
	{WhileSymbol, "WHILE_SYMBOL"},
	{WindowSymbol, "WINDOW_SYMBOL"},
	{WithSymbol, "WITH_SYMBOL"},
	{WithoutSymbol, "WITHOUT_SYMBOL"},
	{WorkSymbol, "WORK_SYMBOL"},
	{WrapperSymbol, "WRAPPER_SYMBOL"},
	{WriteSymbol, "WRITE_SYMBOL"},
	{XaSymbol, "XA_SYMBOL"},
	{X509Symbol, "X509_SYMBOL"},
	{XIDSymbol, "XID_SYMBOL"},
	{XMLSymbol, "XML_SYMBOL"},
	{XorSymbol, "XOR_SYMBOL"},
	{YearMonthSymbol, "YEAR_MONTH_SYMBOL"},
	{ZerofillSymbol, "ZEROFILL_SYMBOL"},
	{Int1Symbol, "INT1_SYMBOL"},
	{Int2Symbol, "INT2_SYMBOL"},
	{Int3Symbol, "INT3_SYMBOL"},
	{Int4Symbol, "INT4_SYMBOL"},
	{Int8Symbol, "INT8_SYMBOL"},
	{Identifier, "IDENTIFIER"},
	{BackTickQuotedID, "BACK_TICK_QUOTED_ID"},
	{DoubleQuotedText, "DOUBLE_QUOTED_TEXT"},
	{SingleQuotedText, "SINGLE_QUOTED_TEXT"},
	{HexNumber, "HEX_NUMBER"},
	{BinNumber, "BIN_NUMBER"},
	{DecimalNumber, "DECIMAL_NUMBER"},
	{FloatNumber, "FLOAT_NUMBER"},
	{UnderscoreCharset, "UNDERSCORE_CHARSET"},
	{DotIdentifier, "DOT_IDENTIFIER"},
	{InvalidInput, "INVALID_INPUT"},
	{Linebreak, "LINEBREAK"},
	{StartSymbol, "START_SYMBOL"},
	{UnlockSymbol, "UNLOCK_SYMBOL"},
	{CloneSymbol, "CLONE_SYMBOL"},
	{GetSymbol, "GET_SYMBOL"},
	{ASCIISymbol, "ASCII_SYMBOL"},
	{BitSymbol, "BIT_SYMBOL"},
	{BucketsSymbol, "BUCKETS_SYMBOL"},
	{ComponentSymbol, "COMPONENT_SYMBOL"},
	{NowSymbol, "NOW_SYMBOL"},
	{DefinitionSymbol, "DEFINITION_SYMBOL"},
	{DenseRankSymbol, "DENSE_RANK_SYMBOL"},
	{DescriptionSymbol, "DESCRIPTION_SYMBOL"},
	{FailedLoginAttemptsSymbol, "FAILED_LOGIN_ATTEMPTS_SYMBOL"},
	{FollowingSymbol, "FOLLOWING_SYMBOL"},
	{GroupingSymbol, "GROUPING_SYMBOL"},
	{GroupsSymbol, "GROUPS_SYMBOL"},
	{LagSymbol, "LAG_SYMBOL"},
	{LongSymbol, "LONG_SYMBOL"},
	{MasterCompressionAlgorithmSymbol, "MASTER_COMPRESSION_ALGORITHM_SYMBOL"},
	{Not2Symbol, "NOT2_SYMBOL"},
	{NoSymbol, "NO_SYMBOL"},
	{ReferenceSymbol, "REFERENCE_SYMBOL"},
	{ReturnSymbol, "RETURN_SYMBOL"},
	{SpecificSymbol, "SPECIFIC_SYMBOL"},
	{AuthorsSymbol, "AUTHORS_SYMBOL"},
	{AdddateSymbol, "ADDDATE_SYMBOL"},
	{ConcatPipesSymbol, "CONCAT_PIPES_SYMBOL"},
	{ActiveSymbol, "ACTIVE_SYMBOL"},
	{AdminSymbol, "ADMIN_SYMBOL"},
	{ExcludeSymbol, "EXCLUDE_SYMBOL"},
	{InactiveSymbol, "INACTIVE_SYMBOL"},
	{LockedSymbol, "LOCKED_SYMBOL"},
	{RoutineSymbol, "ROUTINE_SYMBOL"},
	{UntilSymbol, "UNTIL_SYMBOL"},
	{ArraySymbol, "ARRAY_SYMBOL"},
	{PasswordLockTimeSymbol, "PASSWORD_LOCK_TIME_SYMBOL"},
	{NcharText, "NCHAR_TEXT"},
	{LongNumber, "LONG_NUMBER"},
	{UlonglongNumber, "ULONGLONG_NUMBER"},
	{CumeDistSymbol, "CUME_DIST_SYMBOL"},
	{FoundRowsSymbol, "FOUND_ROWS_SYMBOL"},
	{ConcatSymbol, "CONCAT_SYMBOL"},
	{OverSymbol, "OVER_SYMBOL"},
	{IOThreadSymbol, "IO_THREAD_SYMBOL"},
	{ReplicaSymbol, "REPLICA_SYMBOL"},
	{ConstraintsSymbol, "CONSTRAINTS_SYMBOL"},
}
