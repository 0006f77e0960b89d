package ingest

import (
	"context"
	"strings"

	"github.com/xxxsen/common/logutil"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"go.uber.org/zap"
)

// Chunk is one retrievable knowledge unit extracted from a markdown source.
type Chunk struct {
	Heading string
	Text    string
	Tags    []string
}

const maxChunkTokens = 400

// Chunker splits markdown knowledge files into heading-scoped chunks sized
// for embedding. Each chunk keeps its section heading so retrieval context
// stays self-describing.
type Chunker struct{}

func NewChunker() *Chunker {
	return &Chunker{}
}

func (c *Chunker) Chunk(ctx context.Context, markdown string) []Chunk {
	logger := logutil.GetLogger(ctx)
	md := goldmark.New()
	reader := text.NewReader([]byte(markdown))
	doc := md.Parser().Parse(reader)

	var chunks []Chunk
	var parts []string
	var tokens int
	var heading string

	flush := func() {
		if len(parts) == 0 {
			return
		}
		body := strings.Join(parts, "\n\n")
		chunkText := body
		if heading != "" {
			chunkText = heading + "\n" + body
		}
		chunks = append(chunks, Chunk{Heading: heading, Text: chunkText, Tags: headingTags(heading)})
		parts = nil
		tokens = 0
	}

	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Heading:
			if n.Level <= 2 {
				flush()
				heading = string(n.Text(reader.Source()))
				continue
			}
			txt := string(n.Text(reader.Source()))
			parts = append(parts, txt)
			tokens += estimateTokens(txt)
		default:
			txt := extractText(node, reader.Source())
			if txt == "" {
				continue
			}
			t := estimateTokens(txt)
			if tokens+t > maxChunkTokens {
				flush()
			}
			parts = append(parts, txt)
			tokens += t
		}
	}
	flush()
	logger.Debug("markdown chunked", zap.Int("chunks", len(chunks)))
	return chunks
}

func headingTags(heading string) []string {
	fields := strings.Fields(strings.ToLower(heading))
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func estimateTokens(text string) int {
	count := 0
	for _, r := range text {
		if r > 127 {
			count++
		}
	}
	count += len(strings.Fields(text))
	if count == 0 && len(text) > 0 {
		return 1
	}
	return count
}

func extractText(n ast.Node, source []byte) string {
	var sb strings.Builder
	ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if node.Kind() == ast.KindText {
			sb.Write(node.(*ast.Text).Segment.Value(source))
			sb.WriteByte(' ')
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
