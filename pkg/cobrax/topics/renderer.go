package topics

// Renderer turns a topic's raw content into terminal output.
// format is the topic file extension, such as ".md".
type Renderer interface {
	Render(content string, format string) string
}

// RendererFunc adapts a plain function to Renderer
type RendererFunc func(content, format string) string

// Render calls f
func (f RendererFunc) Render(content, format string) string {
	return f(content, format)
}

// PlainRenderer prints topics verbatim
type PlainRenderer struct{}

// Render returns content unchanged
func (PlainRenderer) Render(content string, _ string) string {
	return content
}
