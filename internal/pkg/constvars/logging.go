package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingMethodKey      = "method"
	LoggingEndpointKey    = "endpoint"
	LoggingRemoteAddrKey  = "remote_addr"
	LoggingUserAgentKey   = "user_agent"
	LoggingQueryKey       = "query"
	LoggingStatusCodeKey  = "status_code"
	LoggingDurationKey    = "duration"
	LoggingSuccessKey     = "success"
	LoggingSessionIDKey   = "session_id"
	LoggingUserIDKey      = "user_id"
	LoggingRoleKey        = "role"
	LoggingRecordKindKey  = "record_kind"
	LoggingRecordIDKey    = "record_id"
	LoggingURLKey         = "url"
	LoggingCountKey       = "count"
	LoggingQueueNameKey   = "queue_name"
	LoggingBucketNameKey  = "bucket_name"
	LoggingObjectNameKey  = "object_name"
	LoggingIntervalKey    = "interval"
	LoggingErrorStatusKey = "error_status"
)
