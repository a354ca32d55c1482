package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
)

func TestSecurityDetector(t *testing.T) {
	d := NewSecurityDetector(newTestBase(), config.DefaultConfig().Detectors.Security)
	set := &model.ChangeSet{}

	t.Run("eval is flagged change-set-wide", func(t *testing.T) {
		file := &model.FileChange{Path: "app/run.js", Content: "eval(userInput);\n", HasContent: true}
		findings := d.Detect(file, set)

		require.Len(t, findings, 1)
		assert.Equal(t, model.ChangeSetWide, findings[0].File)
		assert.Equal(t, model.SeverityHigh, findings[0].Severity)
		assert.Contains(t, findings[0].Message, "eval")
	})

	t.Run("innerHTML assignment is flagged", func(t *testing.T) {
		file := &model.FileChange{Path: "app/dom.js", Content: "node.innerHTML = payload;\n", HasContent: true}
		findings := d.Detect(file, set)

		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, "innerHTML")
	})

	t.Run("one finding per distinct sensitive env var", func(t *testing.T) {
		content := "const a = process.env.API_KEY;\n" +
			"const b = process.env.DB_PASSWORD;\n" +
			"const c = process.env.API_KEY;\n" +
			"const d = process.env.NODE_ENV;\n"
		file := &model.FileChange{Path: "app/env.js", Content: content, HasContent: true}
		findings := d.Detect(file, set)

		require.Len(t, findings, 2)
		assert.Contains(t, findings[0].Message, "API_KEY")
		assert.Contains(t, findings[1].Message, "DB_PASSWORD")
		for _, f := range findings {
			assert.True(t, f.IsChangeSetWide())
		}
	})

	t.Run("clean file yields nothing", func(t *testing.T) {
		file := &model.FileChange{Path: "app/clean.js", Content: "export default render;\n", HasContent: true}
		assert.Empty(t, d.Detect(file, set))
	})
}
