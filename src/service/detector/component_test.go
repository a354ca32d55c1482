package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
)

func TestComponentDetector(t *testing.T) {
	d := NewComponentDetector(newTestBase(), config.DefaultConfig().Detectors.Component)
	set := &model.ChangeSet{}

	t.Run("conditional hook is flagged high", func(t *testing.T) {
		content := "if (visible) { useState(0); }\n"
		file := &model.FileChange{Path: "app/Panel.jsx", Content: content, HasContent: true}
		findings := d.Detect(file, set)

		require.Len(t, findings, 1)
		assert.Equal(t, model.SeverityHigh, findings[0].Severity)
		assert.Contains(t, findings[0].Message, "conditionally")
	})

	t.Run("empty dependency array needs verification", func(t *testing.T) {
		content := "useEffect(() => { subscribe(); }, []);\n"
		file := &model.FileChange{Path: "app/Panel.jsx", Content: content, HasContent: true}
		findings := d.Detect(file, set)

		require.Len(t, findings, 1)
		assert.Equal(t, model.SeverityMedium, findings[0].Severity)
		assert.Contains(t, findings[0].Message, "dependency array")
	})

	t.Run("populated dependency array is fine", func(t *testing.T) {
		content := "useEffect(() => { sync(value); }, [value]);\n"
		file := &model.FileChange{Path: "app/Panel.jsx", Content: content, HasContent: true}
		assert.Empty(t, d.Detect(file, set))
	})

	t.Run("plain source file is not a component", func(t *testing.T) {
		content := "if (visible) { useState(0); }\n"
		file := &model.FileChange{Path: "app/panel.js", Content: content, HasContent: true}
		assert.Empty(t, d.Detect(file, set))
	})
}
