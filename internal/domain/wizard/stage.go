package wizard

import "fmt"

// Stage is the visible step of the simulation wizard. The flow is linear.
type Stage int

const (
	StageSelectProperty Stage = iota
	StageFinancialData
	StageLeadForm
	StageResult
)

var stageNames = [...]string{
	StageSelectProperty: "select_property",
	StageFinancialData:  "financial_data",
	StageLeadForm:       "lead_form",
	StageResult:         "result",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

func (s Stage) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(stageNames) {
		return nil, fmt.Errorf("invalid stage %d", int(s))
	}
	return []byte(stageNames[s]), nil
}

func (s *Stage) UnmarshalText(b []byte) error {
	for i, name := range stageNames {
		if name == string(b) {
			*s = Stage(i)
			return nil
		}
	}
	return fmt.Errorf("unknown stage %q", string(b))
}
