package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/zooyer/dxftag"
	"github.com/zooyer/dxftag/core"
	"github.com/zooyer/dxftag/entities"
)

type stats struct {
	version  dxf.Version
	objects  map[string]int
	handles  int
	erased   int
	extents  core.BBox
	tagTypes map[core.TagType]int
	errors   []core.ParseError
}

func collectStats(doc *dxf.Document) stats {
	s := stats{
		version:  doc.Version,
		objects:  make(map[string]int),
		handles:  doc.Handles.Len(),
		tagTypes: make(map[core.TagType]int),
	}

	for _, obj := range doc.Objects {
		s.objects[obj.Type()]++
		if entities.BaseObject(obj).IsErased() {
			s.erased++
		}
		for _, tag := range entities.BaseObject(obj).Tags {
			s.tagTypes[tag.Type()]++
		}
		if b, ok := obj.(entities.Bounded); ok {
			if box := b.BBox(); box.HasData() {
				s.extents.Extend(box.Min)
				s.extents.Extend(box.Max)
			}
		}
	}

	s.errors = append(s.errors, doc.LoaderErrors...)
	s.errors = append(s.errors, doc.ValueErrors...)
	s.errors = append(s.errors, doc.Errors...)
	return s
}

func (s stats) write(w io.Writer) {
	fmt.Fprintf(w, "version: %s (%s)\n", s.version, s.version.ACADVER())
	fmt.Fprintf(w, "objects: %d handles, %d erased\n", s.handles, s.erased)

	names := make([]string, 0, len(s.objects))
	for name := range s.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "    %-16s %d\n", name, s.objects[name])
	}

	fmt.Fprintln(w, "tags:")
	for t := core.Text; t <= core.Binary; t++ {
		if n := s.tagTypes[t]; n > 0 {
			fmt.Fprintf(w, "    %-16s %d\n", t, n)
		}
	}

	if s.extents.HasData() {
		fmt.Fprintf(w, "extents: %s %s\n", s.extents.Min, s.extents.Max)
	}

	fmt.Fprintf(w, "errors: %d\n", len(s.errors))
	for _, e := range s.errors {
		fmt.Fprintf(w, "    %s\n", e)
	}
}

func newStatsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Summarize objects, tag types and errors of a DXF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := loaderOptions(cmd, flags)
			if err != nil {
				return err
			}

			// 行读取错误也会出现在统计中，不中断输出
			doc, err := dxf.Open(args[0], opts...)
			if doc == nil {
				return err
			}

			collectStats(doc).write(cmd.OutOrStdout())
			return nil
		},
	}
}
