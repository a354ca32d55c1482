package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
)

func TestPerformanceDetector(t *testing.T) {
	d := NewPerformanceDetector(newTestBase(), config.DefaultConfig().Detectors.Performance)
	set := &model.ChangeSet{}

	t.Run("prototype mutation is flagged change-set-wide", func(t *testing.T) {
		file := &model.FileChange{
			Path:       "app/ext.js",
			Content:    "Array.prototype.last = function() { return this[this.length - 1]; };\n",
			HasContent: true,
		}
		findings := d.Detect(file, set)

		require.NotEmpty(t, findings)
		assert.Equal(t, model.ChangeSetWide, findings[0].File)
		assert.Contains(t, findings[0].Message, "prototypes")
	})

	t.Run("more than 5 loop tokens is a bottleneck", func(t *testing.T) {
		content := "items.map(f).filter(g).reduce(h);\n" +
			"rows.forEach(render);\n" +
			"while (pending) {}\n" +
			"others.map(f);\n"
		file := &model.FileChange{Path: "app/loops.js", Content: content, HasContent: true}
		findings := d.Detect(file, set)

		require.Len(t, findings, 1)
		assert.Equal(t, model.SeverityMedium, findings[0].Severity)
		assert.Contains(t, findings[0].Message, "bottleneck")
	})

	t.Run("broad DOM query is flagged low", func(t *testing.T) {
		file := &model.FileChange{
			Path:       "app/dom.js",
			Content:    "const nodes = document.querySelectorAll('div');\n",
			HasContent: true,
		}
		findings := d.Detect(file, set)

		require.Len(t, findings, 1)
		assert.Equal(t, model.SeverityLow, findings[0].Severity)
	})

	t.Run("few loops yield nothing", func(t *testing.T) {
		file := &model.FileChange{Path: "app/ok.js", Content: "items.map(f);\n", HasContent: true}
		assert.Empty(t, d.Detect(file, set))
	})
}
