package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const sample = "0\nSECTION\n2\nENTITIES\n" +
	"0\nLINE\n5\n1F\n10\n0.0\n20\n0.0\n30\n0.0\n11\n10.0\n21\n5.0\n31\n0.0\n" +
	"0\nLWPOLYLINE\n5\n20\n70\n1\n10\n0.0\n20\n0.0\n10\n4.0\n20\n3.0\n" +
	"310\nFEFE\n" +
	"0\nENDSEC\n0\nEOF\n"

func writeSample(t *testing.T) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "sample.dxf")
	if err := os.WriteFile(filename, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	return filename
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	// 不读取用户目录下的配置
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "dxftags "+version {
		t.Fatalf("version 输出 %q", out)
	}
}

func TestDumpCmd_Text(t *testing.T) {
	out, _, err := run(t, "dump", writeSample(t))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"(0, LINE)", "(11, (10, 5, 0))", "(310, FEFE)"} {
		if !strings.Contains(out, want) {
			t.Errorf("输出中缺少 %s:\n%s", want, out)
		}
	}
}

func TestDumpCmd_JSON(t *testing.T) {
	out, _, err := run(t, "dump", "--format", "json", writeSample(t))
	if err != nil {
		t.Fatal(err)
	}

	var records []tagRecord
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("解析 JSON 失败: %v", err)
	}
	if len(records) == 0 || records[0].Code != 0 || records[0].Value != "SECTION" {
		t.Fatalf("records = %+v", records)
	}
}

func TestDumpCmd_YAML(t *testing.T) {
	out, _, err := run(t, "dump", "--format", "yaml", writeSample(t))
	if err != nil {
		t.Fatal(err)
	}

	var records []tagRecord
	if err := yaml.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("解析 YAML 失败: %v", err)
	}
	var found bool
	for _, r := range records {
		if r.Code == 70 && r.Type == "integer" {
			found = true
		}
	}
	if !found {
		t.Fatalf("缺少 70 整数标签: %+v", records)
	}
}

func TestDumpCmd_CSV(t *testing.T) {
	filename := writeSample(t)
	out := filepath.Join(t.TempDir(), "tags.csv")

	stdout, _, err := run(t, "dump", "--format", "csv", "--out", out, filename)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, out) {
		t.Errorf("输出 %q", stdout)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "code,type,value" {
		t.Fatalf("表头 %q", lines[0])
	}
	if !strings.Contains(string(data), "11,vec3,10 5 0") {
		t.Fatalf("CSV 内容:\n%s", data)
	}
}

func TestDumpCmd_CSVQuoting(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "text.dxf")
	if err := os.WriteFile(filename, []byte("0\nTEXT\n1\nA, \"B\"\n0\nEOF\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "text.csv")
	if _, _, err := run(t, "dump", "--format", "csv", "--out", out, filename); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("解析 CSV 失败: %v", err)
	}
	if len(rows) != 4 || rows[2][0] != "1" || rows[2][2] != `A, "B"` {
		t.Fatalf("rows = %q", rows)
	}
}

func TestDumpCmd_UnknownFormat(t *testing.T) {
	if _, _, err := run(t, "dump", "--format", "xml", writeSample(t)); err == nil {
		t.Fatalf("未知格式应返回错误")
	}
}

func TestDumpCmd_Warnings(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "bad.dxf")
	if err := os.WriteFile(filename, []byte("0\nLINE\n70\nabc\n0\nEOF\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := run(t, "dump", filename)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "warning:") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestStatsCmd(t *testing.T) {
	out, _, err := run(t, "stats", writeSample(t))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"objects: 2 handles", "LINE", "LWPOLYLINE", "errors: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("输出中缺少 %s:\n%s", want, out)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("encoding: cp1252\nformat: json\nlog_level: debug\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig(path)
	if cfg.Encoding != "cp1252" || cfg.Format != "json" || cfg.LogLevel != "debug" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); cfg != (Config{}) {
		t.Fatalf("缺失的配置文件应返回空配置: %+v", cfg)
	}
}
