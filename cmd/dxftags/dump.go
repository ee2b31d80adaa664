package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/zooyer/golib/xos"
	"gopkg.in/yaml.v3"

	"github.com/zooyer/dxftag/core"
)

// tagRecord 导出用的标签
type tagRecord struct {
	Code  int    `json:"code" yaml:"code"`
	Type  string `json:"type" yaml:"type"`
	Value any    `json:"value" yaml:"value"`
}

func tagValue(tag core.Tag) any {
	switch t := tag.(type) {
	case core.TextTag:
		return t.Value()
	case core.IntegerTag:
		v, _ := t.Integer()
		return v
	case core.RealTag:
		v, _ := t.Real()
		return v
	case core.Vec3Tag:
		v, _ := t.Vec3()
		if t.Export2D() {
			return []float64{v.X, v.Y}
		}
		return []float64{v.X, v.Y, v.Z}
	case core.BinaryTag:
		v, _ := t.Binary()
		return core.Hexlify(v)
	case core.ErrorTag:
		return nil
	}
	return nil
}

func newRecords(tags []core.Tag) []tagRecord {
	records := make([]tagRecord, 0, len(tags))
	for _, tag := range tags {
		records = append(records, tagRecord{
			Code:  int(tag.GroupCode()),
			Type:  tag.Type().String(),
			Value: tagValue(tag),
		})
	}
	return records
}

func newDumpCmd(flags *globalFlags) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the typed tags of a DXF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cfg, err := loaderOptions(cmd, flags)
			if err != nil {
				return err
			}
			if cfg.Format != "" && !cmd.Flags().Changed("format") {
				format = cfg.Format
			}

			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			tags, loaderErrors, valueErrors := core.LoadTags(file, opts...)
			for _, e := range append(loaderErrors, valueErrors...) {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", e)
			}

			switch format {
			case "text":
				return writeText(cmd.OutOrStdout(), tags)
			case "json":
				return writeJSON(cmd.OutOrStdout(), tags)
			case "yaml":
				return writeYAML(cmd.OutOrStdout(), tags)
			case "csv":
				if out == "" {
					out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".csv"
				}
				if err := writeCSV(out, tags); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "写入文件:", out)
				return nil
			}
			return fmt.Errorf("unknown format %q", format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json, yaml, csv")
	cmd.Flags().StringVar(&out, "out", "", "csv output file (default: <file>.csv)")
	return cmd
}

func writeText(w io.Writer, tags []core.Tag) error {
	for _, tag := range tags {
		if _, err := fmt.Fprintf(w, "%-8s %s\n", tag.Type(), tag); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, tags []core.Tag) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newRecords(tags))
}

func writeYAML(w io.Writer, tags []core.Tag) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newRecords(tags)); err != nil {
		return err
	}
	return enc.Close()
}

func writeCSV(filename string, tags []core.Tag) error {
	var (
		buf bytes.Buffer
		w   = csv.NewWriter(&buf)
	)

	// 先写表头创建文件，数据行一次追加
	if err := w.Write([]string{"code", "type", "value"}); err != nil {
		return err
	}
	if w.Flush(); w.Error() != nil {
		return w.Error()
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return err
	}
	buf.Reset()

	for _, tag := range tags {
		var value string
		switch v := tagValue(tag).(type) {
		case []float64:
			parts := make([]string, len(v))
			for i, f := range v {
				parts[i] = fmt.Sprint(f)
			}
			value = strings.Join(parts, " ")
		default:
			value = fmt.Sprint(v)
		}

		if err := w.Write([]string{strconv.Itoa(int(tag.GroupCode())), tag.Type().String(), value}); err != nil {
			return err
		}
	}
	if w.Flush(); w.Error() != nil {
		return w.Error()
	}

	return xos.AppendFile(filename, buf.Bytes(), 0644)
}
