package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/seenimoa/finsight/internal/config"
	"github.com/seenimoa/finsight/pkg/models"
)

// readInput reads the file named by args[0], or stdin when args is empty
// or names "-".
func readInput(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// addNewsFeed stores an RSS-derived payload as the envelope's news entry,
// replacing any provider news already present.
func addNewsFeed(env *models.Envelope, feed models.NewsFeedPayload) error {
	raw, err := json.Marshal(feed)
	if err != nil {
		return fmt.Errorf("encode news feed: %w", err)
	}
	info, _ := models.DataNewsSentiment.Info()
	env.Add(models.EnvelopeEntry{
		Tag:         string(info.Name),
		Category:    string(info.Category),
		Description: info.Description,
		Data:        raw,
	})
	return nil
}

// render writes v as indented JSON or as YAML. YAML is produced from the
// JSON encoding so that custom marshalers and key order carry over.
func render(w io.Writer, v any, format string, indent int) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	switch format {
	case "", config.FormatJSON:
		var buf bytes.Buffer
		if indent > 0 {
			err = json.Indent(&buf, raw, "", strings.Repeat(" ", indent))
		} else {
			err = json.Compact(&buf, raw)
		}
		if err != nil {
			return fmt.Errorf("format json: %w", err)
		}
		buf.WriteByte('\n')
		_, err = buf.WriteTo(w)
		return err
	case config.FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(raw, &node); err != nil {
			return fmt.Errorf("convert to yaml: %w", err)
		}
		blockStyle(&node)

		enc := yaml.NewEncoder(w)
		if indent > 0 {
			enc.SetIndent(indent)
		}
		if err := enc.Encode(&node); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// blockStyle clears the flow and quoting styles the JSON source implies.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
