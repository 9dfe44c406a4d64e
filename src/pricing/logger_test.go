package pricing

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	// Swap the base logger to capture output
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() { baseLogger = saved }()

	SetLogLevel("info")

	msg := "surface 10x10 done spot=[80.00,120.00] vol=[10.0%,50.0%] in 1.2ms"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "vol=[10.0%,50.0%]") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "%!o(MISSING)") || strings.Contains(out, "%!f(MISSING)") {
		t.Fatalf("log output still shows fmt artifact: %s", out)
	}
}

func TestSetLogLevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() { baseLogger = saved }()
	defer SetLogLevel("info")

	SetLogLevel("error")
	Debugf("hidden debug")
	Infof("hidden info")
	Warnf("hidden warn")
	Errorf("visible error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("messages below threshold leaked: %s", out)
	}
	if !strings.Contains(out, "[ERROR] visible error") {
		t.Fatalf("error message missing: %s", out)
	}

	// Unknown level strings leave the current level untouched.
	SetLogLevel("bogus")
	if GetLogLevel() != LevelError {
		t.Fatalf("unknown level changed threshold to %v", GetLogLevel())
	}
}
