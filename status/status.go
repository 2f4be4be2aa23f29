package status

import "strconv"

// Code is an FMOD_RESULT value. The numeric assignments are FMOD's,
// not ours; they must match the middleware's published table exactly.
type Code int32

const (
	OK                         Code = 0
	ErrBadCommand              Code = 1
	ErrChannelAlloc            Code = 2
	ErrChannelStolen           Code = 3
	ErrDMA                     Code = 4
	ErrDSPConnection           Code = 5
	ErrDSPDontProcess          Code = 6
	ErrDSPFormat               Code = 7
	ErrDSPInUse                Code = 8
	ErrDSPNotFound             Code = 9
	ErrDSPReserved             Code = 10
	ErrDSPSilence              Code = 11
	ErrDSPType                 Code = 12
	ErrFileBad                 Code = 13
	ErrFileCouldNotSeek        Code = 14
	ErrFileDiskEjected         Code = 15
	ErrFileEOF                 Code = 16
	ErrFileEndOfData           Code = 17
	ErrFileNotFound            Code = 18
	ErrFormat                  Code = 19
	ErrHeaderMismatch          Code = 20
	ErrHTTP                    Code = 21
	ErrHTTPAccess              Code = 22
	ErrHTTPProxyAuth           Code = 23
	ErrHTTPServerError         Code = 24
	ErrHTTPTimeout             Code = 25
	ErrInitialization          Code = 26
	ErrInitialized             Code = 27
	ErrInternal                Code = 28
	ErrInvalidFloat            Code = 29
	ErrInvalidHandle           Code = 30
	ErrInvalidParam            Code = 31
	ErrInvalidPosition         Code = 32
	ErrInvalidSpeaker          Code = 33
	ErrInvalidSyncPoint        Code = 34
	ErrInvalidThread           Code = 35
	ErrInvalidVector           Code = 36
	ErrMaxAudible              Code = 37
	ErrMemory                  Code = 38
	ErrMemoryCantPoint         Code = 39
	ErrNeeds3D                 Code = 40
	ErrNeedsHardware           Code = 41
	ErrNetConnect              Code = 42
	ErrNetSocketError          Code = 43
	ErrNetURL                  Code = 44
	ErrNetWouldBlock           Code = 45
	ErrNotReady                Code = 46
	ErrOutputAllocated         Code = 47
	ErrOutputCreateBuffer      Code = 48
	ErrOutputDriverCall        Code = 49
	ErrOutputFormat            Code = 50
	ErrOutputInit              Code = 51
	ErrOutputNoDrivers         Code = 52
	ErrPlugin                  Code = 53
	ErrPluginMissing           Code = 54
	ErrPluginResource          Code = 55
	ErrPluginVersion           Code = 56
	ErrRecord                  Code = 57
	ErrReverbChannelGroup      Code = 58
	ErrReverbInstance          Code = 59
	ErrSubsounds               Code = 60
	ErrSubsoundAllocated       Code = 61
	ErrSubsoundCantMove        Code = 62
	ErrTagNotFound             Code = 63
	ErrTooManyChannels         Code = 64
	ErrTruncated               Code = 65
	ErrUnimplemented           Code = 66
	ErrUninitialized           Code = 67
	ErrUnsupported             Code = 68
	ErrVersion                 Code = 69
	ErrEventAlreadyLoaded      Code = 70
	ErrEventLiveUpdateBusy     Code = 71
	ErrEventLiveUpdateMismatch Code = 72
	ErrEventLiveUpdateTimeout  Code = 73
	ErrEventNotFound           Code = 74
	ErrStudioUninitialized     Code = 75
	ErrStudioNotLoaded         Code = 76
	ErrInvalidString           Code = 77
	ErrAlreadyLocked           Code = 78
	ErrNotLocked               Code = 79
	ErrRecordDisconnected      Code = 80
	ErrTooManySamples          Code = 81

	// Unknown is not an FMOD code. Integers outside the published table
	// map here so a future middleware version degrades instead of
	// crashing older clients.
	Unknown Code = 82
)

var codeNames = [...]string{
	"OK",
	"ERR_BADCOMMAND",
	"ERR_CHANNEL_ALLOC",
	"ERR_CHANNEL_STOLEN",
	"ERR_DMA",
	"ERR_DSP_CONNECTION",
	"ERR_DSP_DONTPROCESS",
	"ERR_DSP_FORMAT",
	"ERR_DSP_INUSE",
	"ERR_DSP_NOTFOUND",
	"ERR_DSP_RESERVED",
	"ERR_DSP_SILENCE",
	"ERR_DSP_TYPE",
	"ERR_FILE_BAD",
	"ERR_FILE_COULDNOTSEEK",
	"ERR_FILE_DISKEJECTED",
	"ERR_FILE_EOF",
	"ERR_FILE_ENDOFDATA",
	"ERR_FILE_NOTFOUND",
	"ERR_FORMAT",
	"ERR_HEADER_MISMATCH",
	"ERR_HTTP",
	"ERR_HTTP_ACCESS",
	"ERR_HTTP_PROXY_AUTH",
	"ERR_HTTP_SERVER_ERROR",
	"ERR_HTTP_TIMEOUT",
	"ERR_INITIALIZATION",
	"ERR_INITIALIZED",
	"ERR_INTERNAL",
	"ERR_INVALID_FLOAT",
	"ERR_INVALID_HANDLE",
	"ERR_INVALID_PARAM",
	"ERR_INVALID_POSITION",
	"ERR_INVALID_SPEAKER",
	"ERR_INVALID_SYNCPOINT",
	"ERR_INVALID_THREAD",
	"ERR_INVALID_VECTOR",
	"ERR_MAXAUDIBLE",
	"ERR_MEMORY",
	"ERR_MEMORY_CANTPOINT",
	"ERR_NEEDS3D",
	"ERR_NEEDSHARDWARE",
	"ERR_NET_CONNECT",
	"ERR_NET_SOCKET_ERROR",
	"ERR_NET_URL",
	"ERR_NET_WOULD_BLOCK",
	"ERR_NOTREADY",
	"ERR_OUTPUT_ALLOCATED",
	"ERR_OUTPUT_CREATEBUFFER",
	"ERR_OUTPUT_DRIVERCALL",
	"ERR_OUTPUT_FORMAT",
	"ERR_OUTPUT_INIT",
	"ERR_OUTPUT_NODRIVERS",
	"ERR_PLUGIN",
	"ERR_PLUGIN_MISSING",
	"ERR_PLUGIN_RESOURCE",
	"ERR_PLUGIN_VERSION",
	"ERR_RECORD",
	"ERR_REVERB_CHANNELGROUP",
	"ERR_REVERB_INSTANCE",
	"ERR_SUBSOUNDS",
	"ERR_SUBSOUND_ALLOCATED",
	"ERR_SUBSOUND_CANTMOVE",
	"ERR_TAGNOTFOUND",
	"ERR_TOOMANYCHANNELS",
	"ERR_TRUNCATED",
	"ERR_UNIMPLEMENTED",
	"ERR_UNINITIALIZED",
	"ERR_UNSUPPORTED",
	"ERR_VERSION",
	"ERR_EVENT_ALREADY_LOADED",
	"ERR_EVENT_LIVEUPDATE_BUSY",
	"ERR_EVENT_LIVEUPDATE_MISMATCH",
	"ERR_EVENT_LIVEUPDATE_TIMEOUT",
	"ERR_EVENT_NOTFOUND",
	"ERR_STUDIO_UNINITIALIZED",
	"ERR_STUDIO_NOT_LOADED",
	"ERR_INVALID_STRING",
	"ERR_ALREADY_LOCKED",
	"ERR_NOT_LOCKED",
	"ERR_RECORD_DISCONNECTED",
	"ERR_TOOMANYSAMPLES",
	"ERR_UNKNOWN",
}

// CodeFromInt converts a raw middleware status integer to a Code.
// It is total: values outside the published table return Unknown.
func CodeFromInt(v int32) Code {
	if v >= int32(OK) && v < int32(Unknown) {
		return Code(v)
	}
	return Unknown
}

// String returns the FMOD_RESULT name for the code.
func (c Code) String() string {
	if c >= 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "ERR_UNKNOWN(" + strconv.FormatInt(int64(c), 10) + ")"
}
