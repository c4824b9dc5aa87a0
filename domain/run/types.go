package run

import (
	"crypto/sha256"
	"fmt"

	"bizstats/domain/core"
	"bizstats/domain/scenario"
	"bizstats/domain/stats"
	"bizstats/domain/verdict"
)

// Report is everything produced by one pipeline execution
type Report struct {
	RunID       core.RunID               `json:"run_id"`
	Scenario    scenario.Scenario        `json:"scenario"`
	Sample      stats.Sample             `json:"-"`
	Summary     stats.Summary            `json:"summary"`
	Interval    stats.ConfidenceInterval `json:"interval"`
	Test        stats.TestResult         `json:"test"`
	Decision    verdict.Decision         `json:"decision"`
	Fingerprint RunFingerprint           `json:"fingerprint"`
	CreatedAt   core.Timestamp           `json:"created_at"`
}

// RunFingerprint ties a report to the exact inputs and sample that produced
// it. Two runs with equal fingerprints printed identical numbers.
type RunFingerprint struct {
	Scenario    core.ScenarioKey `json:"scenario"`
	Seed        int64            `json:"seed"`
	SampleHash  core.SampleHash  `json:"sample_hash"`
	Fingerprint core.Hash        `json:"fingerprint"`
}

// NewRunFingerprint creates a fingerprint from the scenario constants and the drawn sample
func NewRunFingerprint(s scenario.Scenario, sampleHash core.SampleHash) RunFingerprint {
	return RunFingerprint{
		Scenario:    s.Key,
		Seed:        s.Seed,
		SampleHash:  sampleHash,
		Fingerprint: computeRunFingerprint(s, sampleHash),
	}
}

func computeRunFingerprint(s scenario.Scenario, sampleHash core.SampleHash) core.Hash {
	data := fmt.Sprintf("scenario:%s|family:%s|params:%+v|size:%d|seed:%d|null:%v|alpha:%v|confidence:%v|sample:%s",
		s.Key, s.Family, s.Params, s.Size, s.Seed, s.Null, s.Alpha, s.Confidence, sampleHash)

	hash := sha256.Sum256([]byte(data))
	return core.Hash(fmt.Sprintf("%x", hash))
}
