package debug

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
)

//
// Debug output is controlled by the SLIMWC_DEBUG environment variable, which
// can be a list of labels (e.g., "OPEN;WC").
//

const (
	ENV  = "SLIMWC_DEBUG"
	OPEN = "OPEN" // sources being opened and closed
	WC   = "WC"   // per-source and total counts
)

var (
	once   sync.Once
	labels map[string]bool
	logger *zap.SugaredLogger
)

func debugLabels(s string) map[string]bool {
	m := make(map[string]bool)
	if s == "" {
		return m
	}
	for _, l := range strings.Split(s, ";") {
		if l = strings.TrimSpace(l); l != "" {
			m[l] = true
		}
	}
	return m
}

func setup() {
	labels = debugLabels(os.Getenv(ENV))
	if len(labels) == 0 {
		logger = zap.NewNop().Sugar()
		return
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "debug: %v\n", err)
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l.Sugar()
}

// IsLabelSet reports whether label was selected in SLIMWC_DEBUG.
func IsLabelSet(label string) bool {
	once.Do(setup)
	return labels[label]
}

func DPrintf(label string, format string, v ...interface{}) {
	if !IsLabelSet(label) {
		return
	}
	logger.Debugw(fmt.Sprintf(format, v...), "label", label)
}

// Sync flushes any buffered log entries.
func Sync() {
	once.Do(setup)
	logger.Sync()
}
