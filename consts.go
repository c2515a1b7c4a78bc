package pavlog

// Keys written into Event.Data by the format engine.
const (
	KeyMessage = "message"
	KeyFormat  = "format"
	KeyErr     = "err"
	KeyStack   = "stack"
)

const (
	emptyString   = ""
	nameSeparator = ":"
)

const (
	errMsgNilConfig     = "Logging config is nil."
	errMsgNilLogger     = "Logger is nil."
	errMsgConfigInvalid = "Logging configuration is invalid."
	errMsgValidator     = "Failed to initialize config validator."
	errMsgNoChannels    = "No logging channels enabled."
	errMsgLogDir        = "Failed to create logs directory."
	errMsgExecName      = "Failed to get executable name."
	errMsgDecodeConfig  = "Failed to decode logging config."
)
