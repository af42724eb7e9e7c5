package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/2beens/workoutware/pkg"
)

const (
	DefaultLogsDir = "/var/log/workoutware"

	defaultMaxSizeMB = 50
)

type LoggerSetupParams struct {
	// ServiceName tags every entry with a "service" field and names the log file
	// when LogFileName points to a directory. The api server, the mcp server and
	// the admin cli all log through here.
	ServiceName string
	// LogFileName is a file path or a directory ending with a separator.
	// Empty means console only.
	LogFileName   string
	LogToStdout   bool
	LogLevel      string
	LogFormatJSON bool
	// Console is where console output goes, os.Stdout when nil. The mcp stdio
	// transport owns stdout and passes os.Stderr.
	Console io.Writer

	// rotation, zero means lumberjack keeps everything
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.ServiceName != "" {
		logrus.AddHook(NewServiceHook(params.ServiceName))
	}

	if params.SentryEnabled {
		serverName := params.SentryServerName
		if serverName == "" && params.ServiceName != "" {
			serverName = "workoutware-" + params.ServiceName
		}
		err := sentry.Init(sentry.ClientOptions{
			Environment:      params.Environment,
			Dsn:              params.SentryDSN,
			TracesSampleRate: 1.0,
			ServerName:       serverName,
		})
		if err != nil {
			logrus.Errorf("sentry.Init: %s", err)
		}

		logrus.AddHook(NewSentryHook([]logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		}))
		logrus.Infoln("sentry set up")
	}

	out, fileName := newOutput(params)
	logrus.SetOutput(out)
	switch {
	case fileName == "":
		logrus.Debugln("writing logs to console only")
	case params.LogToStdout:
		logrus.Debugf("writing logs to [%s] and console", fileName)
	default:
		logrus.Debugf("writing logs to [%s]", fileName)
	}
}

// newOutput builds the log writer and returns the resolved log file name, if any.
func newOutput(params LoggerSetupParams) (io.Writer, string) {
	console := params.Console
	if console == nil {
		console = os.Stdout
	}

	fileName := LogFilePath(params.LogFileName, params.ServiceName)
	if fileName == "" {
		return console, ""
	}

	maxSize := params.MaxSizeMB
	if maxSize <= 0 {
		maxSize = defaultMaxSizeMB
	}
	rotating := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    maxSize,
		MaxBackups: params.MaxBackups,
		MaxAge:     params.MaxAgeDays,
		LocalTime:  false, // UTC
		Compress:   true,
	}

	if params.LogToStdout {
		return pkg.NewCombinedWriter(console, rotating), fileName
	}
	return rotating, fileName
}

// LogFilePath resolves the log file for a service. A path ending with a
// separator is a directory and gets "<service>.log" appended, any other path
// gets the ".log" suffix when missing.
func LogFilePath(path, serviceName string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		name := serviceName
		if name == "" {
			name = "workoutware"
		}
		return filepath.Join(path, name+".log")
	}
	if !strings.HasSuffix(path, ".log") {
		path += ".log"
	}
	return path
}

// GetLevel parses a level name, case insensitive. Unknown names mean trace.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.TraceLevel
	}
	return parsed
}

// ServiceHook adds the service name to every entry that does not carry one.
type ServiceHook struct {
	service string
}

func NewServiceHook(service string) *ServiceHook {
	return &ServiceHook{
		service: service,
	}
}

func (h *ServiceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *ServiceHook) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data["service"]; !ok {
		entry.Data["service"] = h.service
	}
	return nil
}
