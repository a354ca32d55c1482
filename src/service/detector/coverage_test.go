package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
)

func TestCoverageDetector(t *testing.T) {
	d := NewCoverageDetector(newTestBase(), config.DefaultConfig().Detectors.Coverage)

	t.Run("source file without companion test is flagged", func(t *testing.T) {
		file := model.FileChange{Path: "src/billing/invoice.js", Content: "export {};\n", HasContent: true}
		set := &model.ChangeSet{Files: []model.FileChange{file}}
		findings := d.Detect(&set.Files[0], set)

		require.Len(t, findings, 1)
		assert.Equal(t, model.SeverityHigh, findings[0].Severity)
		assert.Contains(t, findings[0].Message, NoTestFileMarker)
	})

	t.Run("test suffix in the same directory satisfies coverage", func(t *testing.T) {
		set := &model.ChangeSet{Files: []model.FileChange{
			{Path: "src/billing/invoice.js", Content: "export {};\n", HasContent: true},
			{Path: "src/billing/invoice.test.js"},
		}}
		assert.Empty(t, d.Detect(&set.Files[0], set))
	})

	t.Run("relocated test directory satisfies coverage", func(t *testing.T) {
		set := &model.ChangeSet{Files: []model.FileChange{
			{Path: "src/billing/invoice.js", Content: "export {};\n", HasContent: true},
			{Path: "tests/billing/invoice.spec.js"},
		}}
		assert.Empty(t, d.Detect(&set.Files[0], set))
	})

	t.Run("test files themselves are never flagged", func(t *testing.T) {
		file := model.FileChange{Path: "src/billing/invoice.spec.js", Content: "test();\n", HasContent: true}
		set := &model.ChangeSet{Files: []model.FileChange{file}}
		assert.Empty(t, d.Detect(&set.Files[0], set))
	})

	t.Run("files outside the source root are ignored", func(t *testing.T) {
		file := model.FileChange{Path: "scripts/deploy.js", Content: "run();\n", HasContent: true}
		set := &model.ChangeSet{Files: []model.FileChange{file}}
		assert.Empty(t, d.Detect(&set.Files[0], set))
	})
}
