// Package common provides the shared logging foundation for the journal
// editorial service: a global logrus instance with stream-separated output
// so container log collectors can treat errors differently from the rest.
package common

import (
	"bytes"
	"os"

	"github.com/sirupsen/logrus"
)

// OutputSplitter routes formatted log lines to stderr when they carry
// "level=error" (text format) or "level":"error" (JSON format), and to
// stdout otherwise.
type OutputSplitter struct{}

func (splitter *OutputSplitter) Write(p []byte) (n int, err error) {
	if bytes.Contains(p, []byte("level=error")) || bytes.Contains(p, []byte(`"level":"error"`)) {
		return os.Stderr.Write(p)
	}
	return os.Stdout.Write(p)
}

// Logger is the process-wide logrus instance every package builds its
// *logrus.Entry from.
var Logger = logrus.New()

func init() {
	Logger.SetOutput(&OutputSplitter{})
}
