package pavlog

import (
	"os"
	"path/filepath"

	smerrors "github.com/Station-Manager/errors"
	"github.com/Station-Manager/utils"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions configures a FileListener. An empty Dir is the working
// directory; an empty Filename becomes the executable name with a ".log"
// suffix.
type FileOptions struct {
	Dir        string
	Filename   string
	MaxBackups int
	MaxAgeDays int
	MaxSizeMB  int
}

// FileListener writes JSON lines to a rolling file.
type FileListener struct {
	json   *JSONListener
	writer *lumberjack.Logger
}

func NewFileListener(opts FileOptions) (*FileListener, error) {
	const op smerrors.Op = "pavlog.NewFileListener"

	name := opts.Filename
	if name == emptyString {
		exeName, err := utils.ExecName(true)
		if err != nil {
			return nil, smerrors.New(op).Err(err).Msg(errMsgExecName)
		}
		if exeName == emptyString {
			exeName = "app"
		}
		name = exeName + ".log"
	}

	if opts.Dir != emptyString {
		if err := os.MkdirAll(opts.Dir, os.ModePerm); err != nil {
			return nil, smerrors.New(op).Err(err).Msg(errMsgLogDir)
		}
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(opts.Dir, name),
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		MaxSize:    opts.MaxSizeMB,
	}
	return &FileListener{json: NewJSONListener(w, w), writer: w}, nil
}

// Path returns the path of the active log file.
func (f *FileListener) Path() string {
	return f.writer.Filename
}

func (f *FileListener) Handle(ev Event) error {
	return f.json.Handle(ev)
}

// Close releases the log file. It is safe to call more than once.
func (f *FileListener) Close() error {
	return f.writer.Close()
}
