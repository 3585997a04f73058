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

// keywordList holds every reserved and non-reserved word together with the
// server versions it is recognized in. Synonyms point at the kind of the word
// they stand for.
var keywordList = []KeywordRule{
	{"ACCESSIBLE", AccessibleSymbol, 0, 0, false},
	{"ACCOUNT", AccountSymbol, 50707, 0, false},
	{"ACTION", ActionSymbol, 0, 0, false},
	{"ADD", AddSymbol, 0, 0, false},
	{"ADDDATE", AdddateSymbol, 0, 0, true},
	{"AFTER", AfterSymbol, 0, 0, false},
	{"AGAINST", AgainstSymbol, 0, 0, false},
	{"AGGREGATE", AggregateSymbol, 0, 0, false},
	{"ALGORITHM", AlgorithmSymbol, 0, 0, false},
	{"ALL", AllSymbol, 0, 0, false},
	{"ALTER", AlterSymbol, 0, 0, false},
	{"ALWAYS", AlwaysSymbol, 50707, 0, false},
	{"ANALYSE", AnalyseSymbol, 0, 80000, false},
	{"ANALYZE", AnalyzeSymbol, 0, 0, false},
	{"AND", AndSymbol, 0, 0, false},
	{"ANY", AnySymbol, 0, 0, false},
	{"AS", AsSymbol, 0, 0, false},
	{"ASC", AscSymbol, 0, 0, false},
	{"ASCII", ASCIISymbol, 0, 0, false},
	{"ASENSITIVE", AsensitiveSymbol, 0, 0, false},
	{"AT", AtSymbol, 0, 0, false},
	{"AUTHORS", AuthorsSymbol, 0, 50700, false},
	{"AUTOEXTEND_SIZE", AutoextendSizeSymbol, 0, 0, false},
	{"AUTO_INCREMENT", AutoIncrementSymbol, 0, 0, false},
	{"AVG", AvgSymbol, 0, 0, false},
	{"AVG_ROW_LENGTH", AvgRowLengthSymbol, 0, 0, false},
	{"BACKUP", BackupSymbol, 0, 0, false},
	{"BEFORE", BeforeSymbol, 0, 0, false},
	{"BEGIN", BeginSymbol, 0, 0, false},
	{"BETWEEN", BetweenSymbol, 0, 0, false},
	{"BIGINT", BigintSymbol, 0, 0, false},
	{"BINARY", BinarySymbol, 0, 0, false},
	{"BINLOG", BinlogSymbol, 0, 0, false},
	{"BIT", BitSymbol, 0, 0, false},
	{"BIT_AND", BitAndSymbol, 0, 0, true},
	{"BIT_OR", BitOrSymbol, 0, 0, true},
	{"BIT_XOR", BitXorSymbol, 0, 0, true},
	{"BLOB", BlobSymbol, 0, 0, false},
	{"BLOCK", BlockSymbol, 0, 0, false},
	{"BOOL", BoolSymbol, 0, 0, false},
	{"BOOLEAN", BooleanSymbol, 0, 0, false},
	{"BOTH", BothSymbol, 0, 0, false},
	{"BTREE", BtreeSymbol, 0, 0, false},
	{"BY", BySymbol, 0, 0, false},
	{"BYTE", ByteSymbol, 0, 0, false},
	{"CACHE", CacheSymbol, 0, 0, false},
	{"CALL", CallSymbol, 0, 0, false},
	{"CASCADE", CascadeSymbol, 0, 0, false},
	{"CASCADED", CascadedSymbol, 0, 0, false},
	{"CASE", CaseSymbol, 0, 0, false},
	{"CAST", CastSymbol, 0, 0, true},
	{"CATALOG_NAME", CatalogNameSymbol, 0, 0, false},
	{"CHAIN", ChainSymbol, 0, 0, false},
	{"CHANGE", ChangeSymbol, 0, 0, false},
	{"CHANGED", ChangedSymbol, 0, 0, false},
	{"CHANNEL", ChannelSymbol, 50706, 0, false},
	{"CHAR", CharSymbol, 0, 0, false},
	{"CHARSET", CharsetSymbol, 0, 0, false},
	{"CHARACTER", CharSymbol, 0, 0, false},
	{"CHECK", CheckSymbol, 0, 0, false},
	{"CHECKSUM", ChecksumSymbol, 0, 0, false},
	{"CIPHER", CipherSymbol, 0, 0, false},
	{"CLASS_ORIGIN", ClassOriginSymbol, 0, 0, false},
	{"CLIENT", ClientSymbol, 0, 0, false},
	{"CLOSE", CloseSymbol, 0, 0, false},
	{"COALESCE", CoalesceSymbol, 0, 0, false},
	{"CODE", CodeSymbol, 0, 0, false},
	{"COLLATE", CollateSymbol, 0, 0, false},
	{"COLLATION", CollationSymbol, 0, 0, false},
	{"COLUMN", ColumnSymbol, 0, 0, false},
	{"COLUMNS", ColumnsSymbol, 0, 0, false},
	{"COLUMN_FORMAT", ColumnFormatSymbol, 0, 0, false},
	{"COLUMN_NAME", ColumnNameSymbol, 0, 0, false},
	{"COMMENT", CommentSymbol, 0, 0, false},
	{"COMMITTED", CommittedSymbol, 0, 0, false},
	{"COMMIT", CommitSymbol, 0, 0, false},
	{"COMPACT", CompactSymbol, 0, 0, false},
	{"COMPLETION", CompletionSymbol, 0, 0, false},
	{"COMPRESSED", CompressedSymbol, 0, 0, false},
	{"COMPRESSION", CompressionSymbol, 50707, 0, false},
	{"CONCURRENT", ConcurrentSymbol, 0, 0, false},
	{"CONDITION", ConditionSymbol, 0, 0, false},
	{"CONNECTION", ConnectionSymbol, 0, 0, false},
	{"CONSISTENT", ConsistentSymbol, 0, 0, false},
	{"CONSTRAINT", ConstraintSymbol, 0, 0, false},
	{"CONSTRAINTS", ConstraintsSymbol, 0, 0, false},
	{"CONSTRAINT_CATALOG", ConstraintCatalogSymbol, 0, 0, false},
	{"CONSTRAINT_NAME", ConstraintNameSymbol, 0, 0, false},
	{"CONSTRAINT_SCHEMA", ConstraintSchemaSymbol, 0, 0, false},
	{"CONTAINS", ContainsSymbol, 0, 0, false},
	{"CONTEXT", ContextSymbol, 0, 0, false},
	{"CONTINUE", ContinueSymbol, 0, 0, false},
	{"CONTRIBUTORS", ContributorsSymbol, 0, 50700, false},
	{"CONVERT", ConvertSymbol, 0, 0, false},
	{"COUNT", CountSymbol, 0, 0, true},
	{"CPU", CPUSymbol, 0, 0, false},
	{"CREATE", CreateSymbol, 0, 0, false},
	{"CROSS", CrossSymbol, 0, 0, false},
	{"CUBE", CubeSymbol, 0, 80000, false},
	{"CURDATE", CurdateSymbol, 0, 0, true},
	{"CURRENT", CurrentSymbol, 50604, 0, false},
	{"CURRENT_DATE", CurdateSymbol, 0, 0, true},
	{"CURRENT_TIME", CurtimeSymbol, 0, 0, true},
	{"CURRENT_TIMESTAMP", NowSymbol, 0, 0, true},
	{"CURRENT_USER", CurrentUserSymbol, 0, 0, false},
	{"CURSOR", CursorSymbol, 0, 0, false},
	{"CURSOR_NAME", CursorNameSymbol, 0, 0, false},
	{"CURTIME", CurtimeSymbol, 0, 0, true},
	{"DATABASE", DatabaseSymbol, 0, 0, false},
	{"DATABASES", DatabasesSymbol, 0, 0, false},
	{"DATAFILE", DatafileSymbol, 0, 0, false},
	{"DATA", DataSymbol, 0, 0, false},
	{"DATETIME", DatetimeSymbol, 0, 0, false},
	{"DATE", DateSymbol, 0, 0, false},
	{"DATE_ADD", DateAddSymbol, 0, 0, true},
	{"DATE_SUB", DateSubSymbol, 0, 0, true},
	{"DAY", DaySymbol, 0, 0, false},
	{"DAY_HOUR", DayHourSymbol, 0, 0, false},
	{"DAY_MICROSECOND", DayMicrosecondSymbol, 0, 0, false},
	{"DAY_MINUTE", DayMinuteSymbol, 0, 0, false},
	{"DAY_SECOND", DaySecondSymbol, 0, 0, false},
	{"DAYOFMONTH", DaySymbol, 0, 0, false},
	{"DEALLOCATE", DeallocateSymbol, 0, 0, false},
	{"DEC", DecimalSymbol, 0, 0, false},
	{"DECIMAL", DecimalSymbol, 0, 0, false},
	{"DECLARE", DeclareSymbol, 0, 0, false},
	{"DEFAULT", DefaultSymbol, 0, 0, false},
	{"DEFAULT_AUTH", DefaultAuthSymbol, 50604, 0, false},
	{"DEFINER", DefinerSymbol, 0, 0, false},
	{"DEFINITION", DefinitionSymbol, 80011, 0, false},
	{"DELAYED", DelayedSymbol, 0, 0, false},
	{"DELAY_KEY_WRITE", DelayKeyWriteSymbol, 0, 0, false},
	{"DELETE", DeleteSymbol, 0, 0, false},
	{"DENSE_RANK", DenseRankSymbol, 80000, 0, false},
	{"DESC", DescSymbol, 0, 0, false},
	{"DESCRIBE", DescribeSymbol, 0, 0, false},
	{"DESCRIPTION", DescriptionSymbol, 80011, 0, false},
	{"DES_KEY_FILE", DesKeyFileSymbol, 0, 80000, false},
	{"DETERMINISTIC", DeterministicSymbol, 0, 0, false},
	{"DIAGNOSTICS", DiagnosticsSymbol, 0, 0, false},
	{"DIRECTORY", DirectorySymbol, 0, 0, false},
	{"DISABLE", DisableSymbol, 0, 0, false},
	{"DISCARD", DiscardSymbol, 0, 0, false},
	{"DISK", DiskSymbol, 0, 0, false},
	{"DISTINCT", DistinctSymbol, 0, 0, false},
	{"DISTINCTROW", DistinctSymbol, 0, 0, false},
	{"DIV", DivSymbol, 0, 0, false},
	{"DOUBLE", DoubleSymbol, 0, 0, false},
	{"DO", DoSymbol, 0, 0, false},
	{"DROP", DropSymbol, 0, 0, false},
	{"DUAL", DualSymbol, 0, 0, false},
	{"DUMPFILE", DumpfileSymbol, 0, 0, false},
	{"DUPLICATE", DuplicateSymbol, 0, 0, false},
	{"DYNAMIC", DynamicSymbol, 0, 0, false},
	{"EACH", EachSymbol, 0, 0, false},
	{"ELSE", ElseSymbol, 0, 0, false},
	{"ELSEIF", ElseifSymbol, 0, 0, false},
	{"EMPTY", EmptySymbol, 80000, 0, false},
	{"ENABLE", EnableSymbol, 0, 0, false},
	{"ENCLOSED", EnclosedSymbol, 0, 0, false},
	{"ENCRYPTION", EncryptionSymbol, 50711, 0, false},
	{"END", EndSymbol, 0, 0, false},
	{"ENDS", EndsSymbol, 0, 0, false},
	{"ENGINE", EngineSymbol, 0, 0, false},
	{"ENGINES", EnginesSymbol, 0, 0, false},
	{"ENFORCED", EnforcedSymbol, 80017, 0, false},
	{"ENUM", EnumSymbol, 0, 0, false},
	{"ERRORS", ErrorsSymbol, 0, 0, false},
	{"ERROR", ErrorSymbol, 0, 0, false},
	{"ESCAPED", EscapedSymbol, 0, 0, false},
	{"ESCAPE", EscapeSymbol, 0, 0, false},
	{"EVENT", EventSymbol, 0, 0, false},
	{"EVENTS", EventsSymbol, 0, 0, false},
	{"EVERY", EverySymbol, 0, 0, false},
	{"EXCEPT", ExceptSymbol, 80000, 0, false},
	{"EXCHANGE", ExchangeSymbol, 0, 0, false},
	{"EXCLUDE", ExcludeSymbol, 80000, 0, false},
	{"EXECUTE", ExecuteSymbol, 0, 0, false},
	{"EXISTS", ExistsSymbol, 0, 0, false},
	{"EXIT", ExitSymbol, 0, 0, false},
	{"EXPANSION", ExpansionSymbol, 0, 0, false},
	{"EXPIRE", ExpireSymbol, 50606, 0, false},
	{"EXPLAIN", ExplainSymbol, 0, 0, false},
	{"EXPORT", ExportSymbol, 50606, 0, false},
	{"EXTENDED", ExtendedSymbol, 0, 0, false},
	{"EXTENT_SIZE", ExtentSizeSymbol, 0, 0, false},
	{"EXTRACT", ExtractSymbol, 0, 0, true},
	{"FALSE", FalseSymbol, 0, 0, false},
	{"FAILED_LOGIN_ATTEMPTS", FailedLoginAttemptsSymbol, 80019, 0, false},
	{"FAST", FastSymbol, 0, 0, false},
	{"FAULTS", FaultsSymbol, 0, 0, false},
	{"FETCH", FetchSymbol, 0, 0, false},
	{"FIELDS", ColumnsSymbol, 0, 0, false},
	{"FILE", FileSymbol, 0, 0, false},
	{"FILE_BLOCK_SIZE", FileBlockSizeSymbol, 50707, 0, false},
	{"FILTER", FilterSymbol, 50700, 0, false},
	{"FIRST", FirstSymbol, 0, 0, false},
	{"FIRST_VALUE", FirstValueSymbol, 80000, 0, false},
	{"FIXED", FixedSymbol, 0, 0, false},
	{"FLOAT", FloatSymbol, 0, 0, false},
	{"FLOAT4", FloatSymbol, 0, 0, false},
	{"FLOAT8", DoubleSymbol, 0, 0, false},
	{"FLUSH", FlushSymbol, 0, 0, false},
	{"FOLLOWS", FollowsSymbol, 50700, 0, false},
	{"FOLLOWING", FollowingSymbol, 80000, 0, false},
	{"FORCE", ForceSymbol, 0, 0, false},
	{"FOR", ForSymbol, 0, 0, false},
	{"FOREIGN", ForeignSymbol, 0, 0, false},
	{"FORMAT", FormatSymbol, 0, 0, false},
	{"FOUND", FoundSymbol, 0, 0, false},
	{"FROM", FromSymbol, 0, 0, false},
	{"FULL", FullSymbol, 0, 0, false},
	{"FULLTEXT", FulltextSymbol, 0, 0, false},
	{"FUNCTION", FunctionSymbol, 0, 80000, false},
	{"GENERATED", GeneratedSymbol, 50707, 0, false},
	{"GENERAL", GeneralSymbol, 0, 0, false},
	{"GEOMETRYCOLLECTION", GeometrycollectionSymbol, 0, 0, false},
	{"GEOMETRY", GeometrySymbol, 0, 0, false},
	{"GET", GetSymbol, 50604, 0, false},
	{"GET_FORMAT", GetFormatSymbol, 0, 0, false},
	{"GLOBAL", GlobalSymbol, 0, 0, false},
	{"GRANT", GrantSymbol, 0, 0, false},
	{"GRANTS", GrantsSymbol, 0, 0, false},
	{"GROUP", GroupSymbol, 0, 0, false},
	{"GROUP_CONCAT", GroupConcatSymbol, 0, 0, true},
	{"GROUP_REPLICATION", GroupReplicationSymbol, 50707, 0, false},
	{"GROUPING", GroupingSymbol, 80000, 0, false},
	{"GROUPS", GroupsSymbol, 80000, 0, false},
	{"HANDLER", HandlerSymbol, 0, 0, false},
	{"HASH", HashSymbol, 0, 0, false},
	{"HAVING", HavingSymbol, 0, 0, false},
	{"HELP", HelpSymbol, 0, 0, false},
	{"HIGH_PRIORITY", HighPrioritySymbol, 0, 0, false},
	{"HISTOGRAM", HistogramSymbol, 80000, 0, false},
	{"HISTORY", HistorySymbol, 80000, 0, false},
	{"HOST", HostSymbol, 0, 0, false},
	{"HOSTS", HostsSymbol, 0, 0, false},
	{"HOUR", HourSymbol, 0, 0, false},
	{"HOUR_MICROSECOND", HourMicrosecondSymbol, 0, 0, false},
	{"HOUR_MINUTE", HourMinuteSymbol, 0, 0, false},
	{"HOUR_SECOND", HourSecondSymbol, 0, 0, false},
	{"IDENTIFIED", IdentifiedSymbol, 0, 0, false},
	{"IF", IfSymbol, 0, 0, false},
	{"IGNORE", IgnoreSymbol, 0, 0, false},
	{"IGNORE_SERVER_IDS", IgnoreServerIdsSymbol, 0, 0, false},
	{"IMPORT", ImportSymbol, 0, 80000, false},
	{"IN", InSymbol, 0, 0, false},
	{"INDEX", IndexSymbol, 0, 0, false},
	{"INDEXES", IndexesSymbol, 0, 0, false},
	{"INFILE", InfileSymbol, 0, 0, false},
	{"INITIAL_SIZE", InitialSizeSymbol, 0, 0, false},
	{"INNER", InnerSymbol, 0, 0, false},
	{"INOUT", InoutSymbol, 0, 0, false},
	{"INSENSITIVE", InsensitiveSymbol, 0, 0, false},
	{"INSERT", InsertSymbol, 0, 0, false},
	{"INSERT_METHOD", InsertMethodSymbol, 0, 0, false},
	{"INSTANCE", InstanceSymbol, 50713, 0, false},
	{"INSTALL", InstallSymbol, 0, 0, false},
	{"INT", IntSymbol, 0, 0, false},
	{"INTEGER", IntSymbol, 0, 0, false},
	{"INTERVAL", IntervalSymbol, 0, 0, false},
	{"INTO", IntoSymbol, 0, 0, false},
	{"INVISIBLE", InvisibleSymbol, 80000, 0, false},
	{"INVOKER", InvokerSymbol, 0, 0, false},
	{"IO_THREAD", RelayThreadSymbol, 0, 0, false},
	{"IO_AFTER_GTIDS", Identifier, 0, 0, false},
	{"IO_BEFORE_GTIDS", Identifier, 0, 0, false},
	{"IO", IOSymbol, 0, 0, false},
	{"IPC", IPCSymbol, 0, 0, false},
	{"IS", IsSymbol, 0, 0, false},
	{"ISOLATION", IsolationSymbol, 0, 0, false},
	{"ISSUER", IssuerSymbol, 0, 0, false},
	{"ITERATE", IterateSymbol, 0, 0, false},
	{"JOIN", JoinSymbol, 0, 0, false},
	{"JSON", JSONSymbol, 50708, 0, false},
	{"JSON_TABLE", JSONTableSymbol, 80000, 0, false},
	{"JSON_ARRAYAGG", JSONArrayaggSymbol, 80000, 0, false},
	{"JSON_OBJECTAGG", JSONObjectaggSymbol, 80000, 0, false},
	{"KEY", KeySymbol, 0, 0, false},
	{"KEYS", KeysSymbol, 0, 0, false},
	{"KEY_BLOCK_SIZE", KeyBlockSizeSymbol, 0, 0, false},
	{"KILL", KillSymbol, 0, 0, false},
	{"LAG", LagSymbol, 80000, 0, false},
	{"LANGUAGE", LanguageSymbol, 0, 0, false},
	{"LAST", LastSymbol, 0, 0, false},
	{"LAST_VALUE", LastValueSymbol, 80000, 0, false},
	{"LATERAL", LateralSymbol, 80014, 0, false},
	{"LEAD", LeadSymbol, 80000, 0, false},
	{"LEADING", LeadingSymbol, 0, 0, false},
	{"LEAVE", LeaveSymbol, 0, 0, false},
	{"LEAVES", LeavesSymbol, 0, 0, false},
	{"LEFT", LeftSymbol, 0, 0, false},
	{"LESS", LessSymbol, 0, 0, false},
	{"LEVEL", LevelSymbol, 0, 0, false},
	{"LIKE", LikeSymbol, 0, 0, false},
	{"LIMIT", LimitSymbol, 0, 0, false},
	{"LINEAR", LinearSymbol, 0, 0, false},
	{"LINES", LinesSymbol, 0, 0, false},
	{"LINESTRING", LinestringSymbol, 0, 0, false},
	{"LIST", ListSymbol, 0, 0, false},
	{"LOAD", LoadSymbol, 0, 0, false},
	{"LOCAL", LocalSymbol, 0, 0, false},
	{"LOCALTIME", NowSymbol, 0, 0, true},
	{"LOCALTIMESTAMP", NowSymbol, 0, 0, true},
	{"LOCATOR", LocatorSymbol, 0, 0, false},
	{"LOCK", LockSymbol, 0, 0, false},
	{"LOCKS", LocksSymbol, 0, 0, false},
	{"LOGFILE", LogfileSymbol, 0, 0, false},
	{"LOGS", LogsSymbol, 0, 0, false},
	{"LONGBLOB", LongblobSymbol, 0, 0, false},
	{"LONGTEXT", LongtextSymbol, 0, 0, false},
	{"LONG", LongSymbol, 0, 0, false},
	{"LOOP", LoopSymbol, 0, 0, false},
	{"LOW_PRIORITY", LowPrioritySymbol, 0, 0, false},
	{"MASTER", MasterSymbol, 0, 0, false},
	{"MASTER_AUTO_POSITION", MasterAutoPositionSymbol, 50605, 0, false},
	{"MASTER_BIND", MasterBindSymbol, 50602, 0, false},
	{"MASTER_COMPRESSION_ALGORITHM", MasterCompressionAlgorithmSymbol, 80018, 0, false},
	{"MASTER_CONNECT_RETRY", MasterConnectRetrySymbol, 0, 0, false},
	{"MASTER_DELAY", MasterDelaySymbol, 0, 0, false},
	{"MASTER_HEARTBEAT_PERIOD", MasterHeartbeatPeriodSymbol, 0, 0, false},
	{"MASTER_HOST", MasterHostSymbol, 0, 0, false},
	{"MASTER_LOG_FILE", MasterLogFileSymbol, 0, 0, false},
	{"MASTER_LOG_POS", MasterLogPosSymbol, 0, 0, false},
	{"MASTER_PASSWORD", MasterPasswordSymbol, 0, 0, false},
	{"MASTER_PORT", MasterPortSymbol, 0, 0, false},
	{"MASTER_PUBLIC_KEY_PATH", MasterPublicKeyPathSymbol, 80000, 0, false},
	{"MASTER_RETRY_COUNT", MasterRetryCountSymbol, 50601, 0, false},
	{"MASTER_SERVER_ID", MasterServerIDSymbol, 0, 0, false},
	{"MASTER_SSL", MasterSSLSymbol, 0, 0, false},
	{"MASTER_SSL_CA", MasterSSLCaSymbol, 0, 0, false},
	{"MASTER_SSL_CAPATH", MasterSSLCapathSymbol, 0, 0, false},
	{"MASTER_SSL_CERT", MasterSSLCertSymbol, 0, 0, false},
	{"MASTER_SSL_CIPHER", MasterSSLCipherSymbol, 0, 0, false},
	{"MASTER_SSL_CRL", MasterSSLCrlSymbol, 50603, 0, false},
	{"MASTER_SSL_CRLPATH", MasterSSLCrlpathSymbol, 50603, 0, false},
	{"MASTER_SSL_KEY", MasterSSLKeySymbol, 0, 0, false},
	{"MASTER_SSL_VERIFY_SERVER_CERT", MasterSSLVerifyServerCertSymbol, 0, 0, false},
	{"MASTER_TLS_CIPHERSUITES", MasterTLSCiphersuitesSymbol, 80018, 0, false},
	{"MASTER_TLS_VERSION", MasterTLSVersionSymbol, 50713, 0, false},
	{"MASTER_USER", MasterUserSymbol, 0, 0, false},
	{"MASTER_ZSTD_COMPRESSION_LEVEL", MasterZstdCompressionLevelSymbol, 80018, 0, false},
	{"MATCH", MatchSymbol, 0, 0, false},
	{"MAX", MaxSymbol, 0, 0, true},
	{"MAX_CONNECTIONS_PER_HOUR", MaxConnectionsPerHourSymbol, 0, 0, false},
	{"MAX_QUERIES_PER_HOUR", MaxQueriesPerHourSymbol, 0, 0, false},
	{"MAX_ROWS", MaxRowsSymbol, 0, 0, false},
	{"MAX_SIZE", MaxSizeSymbol, 0, 0, false},
	{"MAX_STATEMENT_TIME", MaxStatementTimeSymbol, 50705, 50708, false},
	{"MAX_UPDATES_PER_HOUR", MaxUpdatesPerHourSymbol, 0, 0, false},
	{"MAX_USER_CONNECTIONS", MaxUserConnectionsSymbol, 0, 0, false},
	{"MAXVALUE", MaxvalueSymbol, 0, 0, false},
	{"MEDIUM", MediumSymbol, 0, 0, false},
	{"MEDIUMBLOB", MediumblobSymbol, 0, 0, false},
	{"MEDIUMINT", MediumintSymbol, 0, 0, false},
	{"MEDIUMTEXT", MediumtextSymbol, 0, 0, false},
	{"MEMBER", MemberSymbol, 80017, 0, false},
	{"MEMORY", MemorySymbol, 0, 0, false},
	{"MERGE", MergeSymbol, 0, 0, false},
	{"MESSAGE_TEXT", MessageTextSymbol, 0, 0, false},
	{"MICROSECOND", MicrosecondSymbol, 0, 0, false},
	{"MIDDLEINT", MediumintSymbol, 0, 0, false},
	{"MIGRATE", MigrateSymbol, 0, 0, false},
	{"MINUTE", MinuteSymbol, 0, 0, false},
	{"MINUTE_MICROSECOND", MinuteMicrosecondSymbol, 0, 0, false},
	{"MINUTE_SECOND", MinuteSecondSymbol, 0, 0, false},
	{"MIN", MinSymbol, 0, 0, true},
	{"MIN_ROWS", MinRowsSymbol, 0, 0, false},
	{"MODE", ModeSymbol, 0, 0, false},
	{"MODIFIES", ModifiesSymbol, 0, 0, false},
	{"MODIFY", ModifySymbol, 0, 0, false},
	{"MOD", ModSymbol, 0, 0, false},
	{"MONTH", MonthSymbol, 0, 0, false},
	{"MULTILINESTRING", MultilinestringSymbol, 0, 0, false},
	{"MULTIPOINT", MultipointSymbol, 0, 0, false},
	{"MULTIPOLYGON", MultipolygonSymbol, 0, 0, false},
	{"MUTEX", MutexSymbol, 0, 0, false},
	{"MYSQL_ERRNO", MysqlErrnoSymbol, 0, 0, false},
	{"NAME", NameSymbol, 0, 0, false},
	{"NAMES", NamesSymbol, 0, 0, false},
	{"NATIONAL", NationalSymbol, 0, 0, false},
	{"NATURAL", NaturalSymbol, 0, 0, false},
	{"NCHAR", NcharSymbol, 0, 0, false},
	{"NDB", NdbclusterSymbol, 0, 0, false},
	{"NDBCLUSTER", NdbclusterSymbol, 0, 0, false},
	{"NETWORK_NAMESPACE", NetworkNamespaceSymbol, 80017, 0, false},
	{"NEG", NegSymbol, 0, 0, false},
	{"NESTED", NestedSymbol, 80000, 0, false},
	{"NEVER", NeverSymbol, 50704, 0, false},
	{"NEW", NewSymbol, 0, 0, false},
	{"NEXT", NextSymbol, 0, 0, false},
	{"NODEGROUP", NodegroupSymbol, 0, 0, false},
	{"NONE", NoneSymbol, 0, 0, false},
	{"NONBLOCKING", NonblockingSymbol, 50701, 50706, false},
	{"NOT", NotSymbol, 0, 0, false},
	{"NOW", NowSymbol, 0, 0, true},
	{"NOWAIT", NowaitSymbol, 80000, 0, false},
	{"NO", NoSymbol, 0, 0, false},
	{"NO_WAIT", NoWaitSymbol, 0, 0, false},
	{"NO_WRITE_TO_BINLOG", NoWriteToBinlogSymbol, 0, 0, false},
	{"NULL", NullSymbol, 0, 0, false},
	{"NULLS", NullsSymbol, 80000, 0, false},
	{"NUMBER", NumberSymbol, 50606, 0, false},
	{"NUMERIC", NumericSymbol, 0, 0, false},
	{"NVARCHAR", NvarcharSymbol, 0, 0, false},
	{"NTH_VALUE", NthValueSymbol, 80000, 0, false},
	{"NTILE", NtileSymbol, 80000, 0, false},
	{"OFF", OffSymbol, 80019, 0, false},
	{"OF", OfSymbol, 80000, 0, false},
	{"OFFLINE", OfflineSymbol, 0, 0, false},
	{"OFFSET", OffsetSymbol, 0, 0, false},
	{"OJ", OjSymbol, 80017, 0, false},
	{"OLD", OldSymbol, 80014, 0, false},
	{"OLD_PASSWORD", OldPasswordSymbol, 0, 50706, false},
	{"ON", OnSymbol, 0, 0, false},
	{"ONE", OneSymbol, 0, 0, false},
	{"ONLINE", OnlineSymbol, 0, 0, false},
	{"ONLY", OnlySymbol, 50605, 0, false},
	{"OPEN", OpenSymbol, 0, 0, false},
	{"OPTIONAL", OptionalSymbol, 80013, 0, false},
	{"OPTIONALLY", OptionallySymbol, 0, 0, false},
	{"OPTION", OptionSymbol, 0, 0, false},
	{"OPTIONS", OptionsSymbol, 0, 0, false},
	{"OPTIMIZE", OptimizeSymbol, 0, 0, false},
	{"OPTIMIZER_COSTS", OptimizerCostsSymbol, 50706, 0, false},
	{"OR", OrSymbol, 0, 0, false},
	{"ORDER", OrderSymbol, 0, 0, false},
	{"ORDINALITY", OrdinalitySymbol, 80000, 0, false},
	{"ORGANIZATION", OrganizationSymbol, 80011, 0, false},
	{"OTHERS", OthersSymbol, 80000, 0, false},
	{"OUTER", OuterSymbol, 0, 0, false},
	{"OUTFILE", OutfileSymbol, 0, 0, false},
	{"OUT", OutSymbol, 0, 0, false},
	{"OWNER", OwnerSymbol, 0, 0, false},
	{"PACK_KEYS", PackKeysSymbol, 0, 0, false},
	{"PAGE", PageSymbol, 0, 0, false},
	{"PARSER", ParserSymbol, 0, 0, false},
	{"PARTIAL", PartialSymbol, 0, 0, false},
	{"PARTITION", PartitionSymbol, 0, 0, false},
	{"PARTITIONING", PartitioningSymbol, 0, 0, false},
	{"PARTITIONS", PartitionsSymbol, 0, 0, false},
	{"PASSWORD", PasswordSymbol, 0, 0, false},
	{"PASSWORD_LOCK_TIME", PasswordLockTimeSymbol, 80019, 0, false},
	{"PATH", PathSymbol, 80000, 0, false},
	{"PERCENT_RANK", PercentRankSymbol, 80000, 0, false},
	{"PERSIST", PersistSymbol, 80000, 0, false},
	{"PERSIST_ONLY", PersistOnlySymbol, 80000, 0, false},
	{"PHASE", PhaseSymbol, 0, 0, false},
	{"PLUGIN", PluginSymbol, 0, 0, false},
	{"PLUGINS", PluginsSymbol, 0, 0, false},
	{"PLUGIN_DIR", PluginDirSymbol, 50604, 0, false},
	{"POINT", PointSymbol, 0, 0, false},
	{"POLYGON", PolygonSymbol, 0, 0, false},
	{"PORT", PortSymbol, 0, 0, false},
	{"POSITION", PositionSymbol, 0, 0, true},
	{"PRECEDES", PrecedesSymbol, 50700, 0, false},
	{"PRECEDING", PrecedingSymbol, 80000, 0, false},
	{"PRECISION", PrecisionSymbol, 0, 0, false},
	{"PREPARE", PrepareSymbol, 0, 0, false},
	{"PRESERVE", PreserveSymbol, 0, 0, false},
	{"PREV", PrevSymbol, 0, 0, false},
	{"PRIMARY", PrimarySymbol, 0, 0, false},
	{"PRIVILEGE_CHECKS_USER", PrivilegeChecksUserSymbol, 80018, 0, false},
	{"PRIVILEGES", PrivilegesSymbol, 0, 0, false},
	{"PROCEDURE", ProcedureSymbol, 0, 0, false},
	{"PROCESS", ProcessSymbol, 0, 0, false},
	{"PROCESSLIST", ProcesslistSymbol, 0, 0, false},
	{"PROFILE", ProfileSymbol, 0, 0, false},
	{"PROFILES", ProfilesSymbol, 0, 0, false},
	{"PROXY", ProxySymbol, 0, 0, false},
	{"PURGE", PurgeSymbol, 0, 0, false},
	{"QUARTER", QuarterSymbol, 0, 0, false},
	{"QUERY", QuerySymbol, 0, 0, false},
	{"QUICK", QuickSymbol, 0, 0, false},
	{"RANDOM", RandomSymbol, 80018, 0, false},
	{"RANGE", RangeSymbol, 0, 0, false},
	{"RANK", RankSymbol, 80000, 0, false},
	{"READ", ReadSymbol, 0, 0, false},
	{"READS", ReadsSymbol, 0, 0, false},
	{"READ_ONLY", ReadOnlySymbol, 0, 0, false},
	{"READ_WRITE", ReadWriteSymbol, 0, 0, false},
	{"REAL", RealSymbol, 0, 0, false},
	{"REBUILD", RebuildSymbol, 0, 0, false},
	{"RECOVER", RecoverSymbol, 0, 0, false},
	{"RECURSIVE", RecursiveSymbol, 80000, 0, false},
	{"REDOFILE", RedofileSymbol, 0, 80000, false},
	{"REDO_BUFFER_SIZE", RedoBufferSizeSymbol, 0, 0, false},
	{"REDUNDANT", RedundantSymbol, 0, 0, false},
	{"REFERENCE", ReferenceSymbol, 80011, 0, false},
	{"REFERENCES", ReferencesSymbol, 0, 0, false},
	{"REGEXP", RegexpSymbol, 0, 0, false},
	{"RELAY", RelaySymbol, 0, 0, false},
	{"RELAYLOG", RelaylogSymbol, 0, 0, false},
	{"RELAY_LOG_FILE", RelayLogFileSymbol, 0, 0, false},
	{"RELAY_LOG_POS", RelayLogPosSymbol, 0, 0, false},
	{"RELAY_THREAD", RelayThreadSymbol, 0, 0, false},
	{"RELEASE", ReleaseSymbol, 0, 0, false},
	{"RELOAD", ReloadSymbol, 0, 0, false},
	{"REMOTE", RemoteSymbol, 80003, 80014, false},
	{"REMOVE", RemoveSymbol, 0, 0, false},
	{"RENAME", RenameSymbol, 0, 0, false},
	{"REORGANIZE", ReorganizeSymbol, 0, 0, false},
	{"REPAIR", RepairSymbol, 0, 0, false},
	{"REPEAT", RepeatSymbol, 0, 0, false},
	{"REPEATABLE", RepeatableSymbol, 0, 0, false},
	{"REPLACE", ReplaceSymbol, 0, 0, false},
	{"REPLICATION", ReplicationSymbol, 0, 0, false},
	{"REPLICATE_DO_DB", ReplicateDoDBSymbol, 50700, 0, false},
	{"REPLICATE_IGNORE_DB", ReplicateIgnoreDBSymbol, 50700, 0, false},
	{"REPLICATE_DO_TABLE", ReplicateDoTableSymbol, 50700, 0, false},
	{"REPLICATE_IGNORE_TABLE", ReplicateIgnoreTableSymbol, 50700, 0, false},
	{"REPLICATE_WILD_DO_TABLE", ReplicateWildDoTableSymbol, 50700, 0, false},
	{"REPLICATE_WILD_IGNORE_TABLE", ReplicateWildIgnoreTableSymbol, 50700, 0, false},
	{"REPLICATE_REWRITE_DB", ReplicateRewriteDBSymbol, 50700, 0, false},
	{"REQUIRE", RequireSymbol, 0, 0, false},
	{"REQUIRE_ROW_FORMAT", RequireRowFormatSymbol, 80019, 0, false},
	{"REQUIRE_TABLE_PRIMARY_KEY_CHECK", RequireTablePrimaryKeyCheckSymbol, 80019, 0, false},
	{"RESOURCE", ResourceSymbol, 80000, 0, false},
	{"RESPECT", RespectSymbol, 80000, 0, false},
	{"RESTART", RestartSymbol, 80011, 0, false},
	{"RESTORE", RestoreSymbol, 0, 0, false},
	{"RESTRICT", RestrictSymbol, 0, 0, false},
	{"RESUME", ResumeSymbol, 0, 0, false},
	{"RETAIN", RetainSymbol, 80014, 0, false},
	{"RETURNED_SQLSTATE", ReturnedSqlstateSymbol, 0, 0, false},
	{"RETURNS", ReturnsSymbol, 0, 0, false},
	{"RETURN", ReturnSymbol, 0, 0, false},
	{"REUSE", ReuseSymbol, 80000, 0, false},
	{"REVERSE", ReverseSymbol, 0, 0, false},
	{"REVOKE", RevokeSymbol, 0, 0, false},
	{"RIGHT", RightSymbol, 0, 0, false},
	{"RLIKE", RegexpSymbol, 0, 0, false},
	{"ROLE", RoleSymbol, 80000, 0, false},
	{"ROLLBACK", RollbackSymbol, 0, 0, false},
	{"ROLLUP", RollupSymbol, 0, 0, false},
	{"ROTATE", RotateSymbol, 50713, 0, false},
	{"ROW", RowSymbol, 0, 80000, false},
	{"ROWS", RowsSymbol, 0, 80000, false},
	{"ROW_COUNT", RowCountSymbol, 0, 0, false},
	{"ROW_FORMAT", RowFormatSymbol, 0, 0, false},
	{"ROW_NUMBER", RowNumberSymbol, 80000, 0, false},
	{"RTREE", RtreeSymbol, 0, 0, false},
	{"SAVEPOINT", SavepointSymbol, 0, 0, false},
	{"SCHEDULE", ScheduleSymbol, 0, 0, false},
	{"SCHEMA", DatabaseSymbol, 0, 0, false},
	{"SCHEMAS", DatabasesSymbol, 0, 0, false},
	{"SCHEMA_NAME", SchemaNameSymbol, 0, 0, false},
	{"SECOND", SecondSymbol, 0, 0, false},
	{"SECOND_MICROSECOND", SecondMicrosecondSymbol, 0, 0, false},
	{"SECONDARY", SecondarySymbol, 80013, 0, false},
	{"SECONDARY_ENGINE", SecondaryEngineSymbol, 80013, 0, false},
	{"SECONDARY_LOAD", SecondaryLoadSymbol, 80013, 0, false},
	{"SECONDARY_UNLOAD", SecondaryUnloadSymbol, 80013, 0, false},
	{"SECURITY", SecuritySymbol, 0, 0, false},
	{"SELECT", SelectSymbol, 0, 0, false},
	{"SENSITIVE", SensitiveSymbol, 0, 0, false},
	{"SEPARATOR", SeparatorSymbol, 0, 0, false},
	{"SERIALIZABLE", SerializableSymbol, 0, 0, false},
	{"SERIAL", SerialSymbol, 0, 0, false},
	{"SERVER", ServerSymbol, 0, 0, false},
	{"SERVER_OPTIONS", ServerOptionsSymbol, 0, 0, false},
	{"SESSION", SessionSymbol, 0, 0, false},
	{"SESSION_USER", UserSymbol, 0, 0, false},
	{"SET", SetSymbol, 0, 0, false},
	{"SET_VAR", SetVarSymbol, 0, 0, false},
	{"SHARE", ShareSymbol, 0, 0, false},
	{"SHOW", ShowSymbol, 0, 0, false},
	{"SHUTDOWN", ShutdownSymbol, 0, 50709, false},
	{"SIGNAL", SignalSymbol, 0, 0, false},
	{"SIGNED", SignedSymbol, 0, 0, false},
	{"SIMPLE", SimpleSymbol, 0, 0, false},
	{"SKIP", SkipSymbol, 80000, 0, false},
	{"SLAVE", SlaveSymbol, 0, 0, false},
	{"SLOW", SlowSymbol, 0, 0, false},
	{"SMALLINT", SmallintSymbol, 0, 0, false},
	{"SNAPSHOT", SnapshotSymbol, 0, 0, false},
	{"SOME", AnySymbol, 0, 0, false},
	{"SOCKET", SocketSymbol, 0, 0, false},
	{"SONAME", SonameSymbol, 0, 0, false},
	{"SOUNDS", SoundsSymbol, 0, 0, false},
	{"SOURCE", SourceSymbol, 0, 0, false},
	{"SPATIAL", SpatialSymbol, 0, 0, false},
	{"SPECIFIC", SpecificSymbol, 0, 0, false},
	{"SQL", SQLSymbol, 0, 0, false},
	{"SQLEXCEPTION", SqlexceptionSymbol, 0, 0, false},
	{"SQLSTATE", SqlstateSymbol, 0, 0, false},
	{"SQLWARNING", SqlwarningSymbol, 0, 0, false},
	{"SQL_AFTER_GTIDS", SQLAfterGTIDSSymbol, 0, 0, false},
	{"SQL_AFTER_MTS_GAPS", SQLAfterMtsGapsSymbol, 50606, 0, false},
	{"SQL_BEFORE_GTIDS", SQLBeforeGTIDSSymbol, 0, 0, false},
	{"SQL_BIG_RESULT", SQLBigResultSymbol, 0, 0, false},
	{"SQL_BUFFER_RESULT", SQLBufferResultSymbol, 0, 0, false},
	{"SQL_CALC_FOUND_ROWS", SQLCalcFoundRowsSymbol, 0, 0, false},
	{"SQL_CACHE", SQLCacheSymbol, 0, 80000, false},
	{"SQL_NO_CACHE", SQLNoCacheSymbol, 0, 0, false},
	{"SQL_SMALL_RESULT", SQLSmallResultSymbol, 0, 0, false},
	{"SQL_THREAD", SQLThreadSymbol, 0, 0, false},
	{"SQL_TSI_SECOND", SecondSymbol, 0, 0, false},
	{"SQL_TSI_MINUTE", MinuteSymbol, 0, 0, false},
	{"SQL_TSI_HOUR", HourSymbol, 0, 0, false},
	{"SQL_TSI_DAY", DaySymbol, 0, 0, false},
	{"SQL_TSI_WEEK", WeekSymbol, 0, 0, false},
	{"SQL_TSI_MONTH", MonthSymbol, 0, 0, false},
	{"SQL_TSI_QUARTER", QuarterSymbol, 0, 0, false},
	{"SQL_TSI_YEAR", YearSymbol, 0, 0, false},
	{"SRID", SridSymbol, 80000, 0, false},
	{"SSL", SSLSymbol, 0, 0, false},
	{"STACKED", StackedSymbol, 50700, 0, false},
	{"STARTING", StartingSymbol, 0, 0, false},
	{"STARTS", StartsSymbol, 0, 0, false},
	{"START", StartSymbol, 0, 0, false},
	{"STATS_AUTO_RECALC", StatsAutoRecalcSymbol, 0, 0, false},
	{"STATS_PERSISTENT", StatsPersistentSymbol, 0, 0, false},
	{"STATS_SAMPLE_PAGES", StatsSamplePagesSymbol, 0, 0, false},
	{"STATUS", StatusSymbol, 0, 0, false},
	{"STD", StdSymbol, 0, 0, true},
	{"STDDEV", StdSymbol, 0, 0, true},
	{"STDDEV_POP", StdSymbol, 0, 0, true},
	{"STDDEV_SAMP", StddevSampSymbol, 0, 0, true},
	{"STOP", StopSymbol, 0, 0, false},
	{"STORAGE", StorageSymbol, 0, 0, false},
	{"STORED", StoredSymbol, 50707, 0, false},
	{"STRAIGHT_JOIN", StraightJoinSymbol, 0, 0, false},
	{"STREAM", StreamSymbol, 80019, 0, false},
	{"STRING", StringSymbol, 0, 0, false},
	{"SUBCLASS_ORIGIN", SubclassOriginSymbol, 0, 0, false},
	{"SUBDATE", SubdateSymbol, 0, 0, true},
	{"SUBJECT", SubjectSymbol, 0, 0, false},
	{"SUBPARTITION", SubpartitionSymbol, 0, 0, false},
	{"SUBPARTITIONS", SubpartitionsSymbol, 0, 0, false},
	{"SUBSTR", SubstringSymbol, 0, 0, true},
	{"SUBSTRING", SubstringSymbol, 0, 0, true},
	{"SUM", SumSymbol, 0, 0, true},
	{"SUPER", SuperSymbol, 0, 0, false},
	{"SUSPEND", SuspendSymbol, 0, 0, false},
	{"SWAPS", SwapsSymbol, 0, 0, false},
	{"SWITCHES", SwitchesSymbol, 0, 0, false},
	{"SYSDATE", SysdateSymbol, 0, 0, true},
	{"SYSTEM", SystemSymbol, 80000, 0, false},
	{"SYSTEM_USER", UserSymbol, 0, 0, false},
	{"TABLE", TableSymbol, 0, 0, false},
	{"TABLES", TablesSymbol, 0, 0, false},
	{"TABLESPACE", TablespaceSymbol, 0, 0, false},
	{"TABLE_CHECKSUM", TableChecksumSymbol, 0, 0, false},
	{"TABLE_NAME", TableNameSymbol, 0, 0, false},
	{"TEMPORARY", TemporarySymbol, 0, 0, false},
	{"TEMPTABLE", TemptableSymbol, 0, 0, false},
	{"TERMINATED", TerminatedSymbol, 0, 0, false},
	{"TEXT", TextSymbol, 0, 0, false},
	{"THAN", ThanSymbol, 0, 0, false},
	{"THEN", ThenSymbol, 0, 0, false},
	{"THREAD_PRIORITY", ThreadPrioritySymbol, 80000, 0, false},
	{"TIES", TiesSymbol, 80000, 0, false},
	{"TIME", TimeSymbol, 0, 0, false},
	{"TIMESTAMP", TimestampSymbol, 0, 0, false},
	{"TIMESTAMPADD", TimestampAddSymbol, 0, 0, false},
	{"TIMESTAMPDIFF", TimestampDiffSymbol, 0, 0, false},
	{"TINYBLOB", TinyblobSymbol, 0, 0, false},
	{"TINYINT", TinyintSymbol, 0, 0, false},
	{"TINYTEXT", TinytextSymbol, 0, 0, false},
	{"TO", ToSymbol, 0, 0, false},
	{"TRAILING", TrailingSymbol, 0, 0, false},
	{"TRANSACTION", TransactionSymbol, 0, 0, false},
	{"TRIGGER", TriggerSymbol, 0, 0, false},
	{"TRIGGERS", TriggersSymbol, 0, 0, false},
	{"TRIM", TrimSymbol, 0, 0, true},
	{"TRUE", TrueSymbol, 0, 0, false},
	{"TRUNCATE", TruncateSymbol, 0, 0, false},
	{"TYPES", TypesSymbol, 0, 0, false},
	{"TYPE", TypeSymbol, 0, 0, false},
	{"UDF_RETURNS", UDFReturnsSymbol, 0, 0, false},
	{"UNBOUNDED", UnboundedSymbol, 80000, 0, false},
	{"UNCOMMITTED", UncommittedSymbol, 0, 0, false},
	{"UNDEFINED", UndefinedSymbol, 0, 0, false},
	{"UNDO", UndoSymbol, 0, 0, false},
	{"UNDO_BUFFER_SIZE", UndoBufferSizeSymbol, 0, 0, false},
	{"UNDOFILE", UndofileSymbol, 0, 0, false},
	{"UNICODE", UnicodeSymbol, 0, 0, false},
	{"UNION", UnionSymbol, 0, 0, false},
	{"UNIQUE", UniqueSymbol, 0, 0, false},
	{"UNKNOWN", UnknownSymbol, 0, 0, false},
	{"UNINSTALL", UninstallSymbol, 0, 0, false},
	{"UNLOCK", UnlockSymbol, 0, 0, false},
	{"UNSIGNED", UnsignedSymbol, 0, 0, false},
	{"UPDATE", UpdateSymbol, 0, 0, false},
	{"UPGRADE", UpgradeSymbol, 0, 0, false},
	{"USAGE", UsageSymbol, 0, 0, false},
	{"USER", UserSymbol, 0, 0, false},
	{"USER_RESOURCES", UserResourcesSymbol, 0, 0, false},
	{"USE", UseSymbol, 0, 0, false},
	{"USE_FRM", UseFrmSymbol, 0, 0, false},
	{"USING", UsingSymbol, 0, 0, false},
	{"UTC_DATE", UTCDateSymbol, 0, 0, false},
	{"UTC_TIME", UTCTimeSymbol, 0, 0, false},
	{"UTC_TIMESTAMP", UTCTimestampSymbol, 0, 0, false},
	{"VALIDATION", ValidationSymbol, 50706, 0, false},
	{"VALUE", ValueSymbol, 0, 0, false},
	{"VALUES", ValuesSymbol, 0, 0, false},
	{"VARBINARY", VarbinarySymbol, 0, 0, false},
	{"VARCHAR", VarcharSymbol, 0, 0, false},
	{"VARCHARACTER", VarcharSymbol, 0, 0, false},
	{"VARIABLES", VariablesSymbol, 0, 0, false},
	{"VARIANCE", VarianceSymbol, 0, 0, true},
	{"VARYING", VaryingSymbol, 0, 0, false},
	{"VAR_POP", VarianceSymbol, 0, 0, true},
	{"VAR_SAMP", VarSampSymbol, 0, 0, true},
	{"VCPU", VcpuSymbol, 80000, 0, false},
	{"VIEW", ViewSymbol, 0, 0, false},
	{"VIRTUAL", VirtualSymbol, 50707, 0, false},
	{"VISIBLE", VisibleSymbol, 80000, 0, false},
	{"WAIT", WaitSymbol, 0, 0, false},
	{"WARNINGS", WarningsSymbol, 0, 0, false},
	{"WEEK", WeekSymbol, 0, 0, false},
	{"WHEN", WhenSymbol, 0, 0, false},
	{"WEIGHT_STRING", WeightStringSymbol, 0, 0, false},
	{"WHERE", WhereSymbol, 0, 0, false},
	{"WHILE", WhileSymbol, 0, 0, false},
	{"WINDOW", WindowSymbol, 80000, 0, false},
	{"WITH", WithSymbol, 0, 0, false},
	{"WITHOUT", WithoutSymbol, 80000, 0, false},
	{"WORK", WorkSymbol, 0, 0, false},
	{"WRAPPER", WrapperSymbol, 0, 0, false},
	{"WRITE", WriteSymbol, 0, 0, false},
	{"XA", XaSymbol, 0, 0, false},
	{"X509", X509Symbol, 0, 0, false},
	{"XID", XIDSymbol, 50704, 0, false},
	{"XML", XMLSymbol, 0, 0, false},
	{"XOR", XorSymbol, 0, 0, false},
	{"YEAR", YearSymbol, 0, 0, false},
	{"YEAR_MONTH", YearMonthSymbol, 0, 0, false},
	{"ZEROFILL", ZerofillSymbol, 0, 0, false},
	{"INT1", TinyintSymbol, 0, 0, false},
	{"INT2", SmallintSymbol, 0, 0, false},
	{"INT3", MediumintSymbol, 0, 0, false},
	{"INT4", IntSymbol, 0, 0, false},
	{"INT8", BigintSymbol, 0, 0, false},
}
