// Package output serializes command results to stdout.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/uiasnap/uiasnap/internal/model"
	"github.com/uiasnap/uiasnap/internal/sysinfo"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// TreeResult is the top-level output of the `tree` command.
type TreeResult struct {
	TS    int64            `yaml:"ts"    json:"ts"`
	Trees []model.TreeNode `yaml:"trees" json:"trees"`
}

// TreeFlatResult is the top-level output when --flat is used.
type TreeFlatResult struct {
	TS    int64            `yaml:"ts"    json:"ts"`
	Nodes []model.FlatNode `yaml:"nodes" json:"nodes"`
}

// ListResult is the top-level output of the `list` command.
type ListResult struct {
	TS      int64          `yaml:"ts"      json:"ts"`
	Windows []model.Window `yaml:"windows" json:"windows"`
}

// SysinfoResult is the top-level output of the `sysinfo` command.
type SysinfoResult struct {
	TS   int64             `yaml:"ts"   json:"ts"`
	Host *sysinfo.Snapshot `yaml:"host" json:"host"`
}

// InputResult is the top-level output of the input commands.
type InputResult struct {
	TS      int64 `yaml:"ts"      json:"ts"`
	Applied int   `yaml:"applied" json:"applied"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
