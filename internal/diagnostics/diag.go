package diagnostics

import (
	"fmt"
	"time"
)

type Severity string

const (
	Info Severity = "info"
	Warn Severity = "warning"
	Err  Severity = "error"
)

const (
	CodeSequenceComplete = "SEQ_COMPLETE"
	CodeIndicator        = "INDICATOR"
	CodeUnknownModel     = "MODEL_UNKNOWN"
	CodeDriverWrite      = "DRIVER_WRITE"
	CodeDrill            = "DRILL"
	CodeSlowFrame        = "FRAME_SLOW"
)

type Diagnostic struct {
	Severity       Severity       `json:"severity"`
	Code           string         `json:"code"`
	Summary        string         `json:"summary"`
	Detail         string         `json:"detail,omitempty"`
	LikelyCauses   []string       `json:"likely_causes,omitempty"`
	SuggestedFixes []string       `json:"suggested_fixes,omitempty"`
	Evidence       map[string]any `json:"evidence,omitempty"`
	Time           time.Time      `json:"time"`
}

func SequenceComplete(line int, name, finished string) Diagnostic {
	return Diagnostic{
		Severity: Info,
		Code:     CodeSequenceComplete,
		Summary:  fmt.Sprintf("line %s finished %s", name, finished),
		Evidence: map[string]any{"line": line, "finished": finished},
		Time:     time.Now(),
	}
}

func Indicator(on bool) Diagnostic {
	state := "off"
	if on {
		state = "on"
	}
	return Diagnostic{
		Severity: Info,
		Code:     CodeIndicator,
		Summary:  "emergency light " + state,
		Evidence: map[string]any{"on": on},
		Time:     time.Now(),
	}
}

func UnknownModels(skipped int) Diagnostic {
	return Diagnostic{
		Severity:       Warn,
		Code:           CodeUnknownModel,
		Summary:        fmt.Sprintf("%d draw calls skipped", skipped),
		LikelyCauses:   []string{"asset manifest is missing a key the scene draws"},
		SuggestedFixes: []string{"add the key to assets.yaml or drop the manifest to use the built-in one"},
		Evidence:       map[string]any{"skipped": skipped},
		Time:           time.Now(),
	}
}

func DriverWrite(err error) Diagnostic {
	return Diagnostic{
		Severity: Err,
		Code:     CodeDriverWrite,
		Summary:  "frame driver write failed",
		Detail:   err.Error(),
		Time:     time.Now(),
	}
}

func SlowFrame(totalMS, budgetMS float64) Diagnostic {
	return Diagnostic{
		Severity:     Warn,
		Code:         CodeSlowFrame,
		Summary:      fmt.Sprintf("frame took %.1f ms (budget %.1f ms)", totalMS, budgetMS),
		LikelyCauses: []string{"slow websocket clients", "large starfield"},
		Evidence:     map[string]any{"total_ms": totalMS, "budget_ms": budgetMS},
		Time:         time.Now(),
	}
}

func Drill(kind string, err error) Diagnostic {
	d := Diagnostic{Severity: Info, Code: CodeDrill, Summary: "drill " + kind + " finished", Time: time.Now()}
	if err != nil {
		d.Severity = Warn
		d.Summary = "drill " + kind + " aborted"
		d.Detail = err.Error()
	}
	return d
}
