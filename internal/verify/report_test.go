package verify

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/stretchr/testify/assert"
)

// The report for the built-in suite is pinned byte-for-byte. To
// regenerate after a deliberate format change:
//
//	go test ./internal/verify -update
func TestWriteReport_DefaultSuiteGolden(t *testing.T) {
	res := RunSuite(DefaultSuite())

	var buf bytes.Buffer
	WriteReport(&buf, res)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "default-suite", buf.Bytes())
}

func TestWriteReport_MarksMismatch(t *testing.T) {
	res := &Result{
		Suite: "broken",
		Pass:  false,
		Discriminant: []CaseOutcome{
			{Label: "2N=  30 p=  7 q= 23", Pass: true},
			{Label: "2N=  20 p=  3 q= 17", Pass: false, Detail: "computed 1, formula 2"},
		},
		Passed: 1,
		Failed: 1,
	}

	var buf bytes.Buffer
	WriteReport(&buf, res)
	out := buf.String()

	assert.Contains(t, out, "Theorem suite: broken")
	assert.Contains(t, out, "2N=  30 p=  7 q= 23: ok")
	assert.Contains(t, out, "2N=  20 p=  3 q= 17: computed 1, formula 2: MISMATCH")
	assert.Contains(t, out, "FAIL: 1 passed, 1 failed, 0 skipped")
}

func TestWriteReport_SkippedStatus(t *testing.T) {
	res := &Result{
		Suite: "skips",
		Pass:  true,
		Valuation: []CaseOutcome{
			{Label: "2N=  30 p=  5 r= 5", Pass: true, Skipped: true, Detail: "hypothesis violated: r divides p(2N-p)(N-p)"},
		},
		Skipped: 1,
	}

	var buf bytes.Buffer
	WriteReport(&buf, res)
	out := buf.String()

	assert.Contains(t, out, "hypothesis violated: r divides p(2N-p)(N-p): skip")
	assert.Contains(t, out, "PASS: 0 passed, 0 failed, 1 skipped")
}

func TestWriteReport_OmitsEmptySections(t *testing.T) {
	res := &Result{
		Suite:        "disc-only",
		Pass:         true,
		Discriminant: []CaseOutcome{{Label: "2N=  30 p=  7 q= 23", Pass: true}},
		Passed:       1,
	}

	var buf bytes.Buffer
	WriteReport(&buf, res)
	out := buf.String()

	assert.Contains(t, out, "Discriminant formula")
	assert.NotContains(t, out, "Valuation identity")
	assert.NotContains(t, out, "Conduit uniformity")
}
