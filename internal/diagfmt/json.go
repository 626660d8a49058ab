package diagfmt

import (
	"encoding/json"
	"io"

	"veriscript/internal/diag"
	"veriscript/internal/source"
)

type positionOutput struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

type diagnosticOutput struct {
	Severity string          `json:"severity"`
	Code     string          `json:"code"`
	Message  string          `json:"message"`
	File     string          `json:"file"`
	Span     source.Span     `json:"span"`
	Start    *positionOutput `json:"start,omitempty"`
	End      *positionOutput `json:"end,omitempty"`
}

// JSON выводит диагностики в JSON формате, по записи на диагностику.
// Порядок совпадает с bag.Items() (ожидается bag.Sort() заранее).
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}

	output := make([]diagnosticOutput, 0, len(items))
	for _, d := range items {
		file := fs.Get(d.Primary.File)
		out := diagnosticOutput{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			File:     formatPath(file.Path, opts.PathMode),
			Span:     d.Primary,
		}
		if opts.IncludePositions {
			start, end := fs.Resolve(d.Primary)
			out.Start = &positionOutput{Line: start.Line, Col: start.Col}
			out.End = &positionOutput{Line: end.Line, Col: end.Col}
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
