package storefrontserver

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/huerto-store/internal/shared/editor"
)

// EditorCommit is returned by editor submits. Record is nil when an edit targeted a
// record that no longer exists.
type EditorCommit[T any] struct {
	Record  *T           `json:"registro"`
	Created bool         `json:"creado"`
	Applied bool         `json:"aplicado"`
	State   editor.State `json:"editor"`
}

// bindForm reads a flat JSON object of field values. Numbers and booleans keep their
// literal text so the entity binding can validate them.
func bindForm(c *gin.Context) (editor.Form, error) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		return nil, err
	}
	form := make(editor.Form, len(raw))
	for field, value := range raw {
		if len(value) > 0 && (value[0] == '{' || value[0] == '[') {
			return nil, fmt.Errorf("field %q must be a scalar", field)
		}
		form[field] = rawText(value)
	}
	return form, nil
}
