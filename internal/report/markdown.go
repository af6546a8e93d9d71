package report

import (
	"fmt"
	"strings"
)

// Markdown renders doc as Markdown. The timeline image is referenced by
// imagePath when given, otherwise summarised by size.
func Markdown(doc Document, imagePath string) string {
	var b strings.Builder
	for _, s := range doc.Sections {
		switch s.Kind {
		case SectionTitle:
			fmt.Fprintf(&b, "# %s\n\n", s.Heading)
			for _, line := range s.Lines {
				fmt.Fprintf(&b, "%s\n\n", line)
			}
		case SectionScope:
			for _, blk := range s.Blocks {
				fmt.Fprintf(&b, "## %s\n\n", blk.Heading)
				if blk.Text != "" {
					fmt.Fprintf(&b, "%s\n\n", blk.Text)
				}
				for _, item := range blk.Bullets {
					fmt.Fprintf(&b, "* %s\n", item)
				}
				if len(blk.Bullets) > 0 {
					b.WriteString("\n")
				}
			}
		case SectionTasks:
			fmt.Fprintf(&b, "## %s\n\n", s.Heading)
			if len(s.Lines) == 0 {
				b.WriteString("No tasks.\n\n")
			}
			for _, line := range s.Lines {
				fmt.Fprintf(&b, "- %s\n", line)
			}
			if len(s.Lines) > 0 {
				b.WriteString("\n")
			}
		case SectionTimeline:
			fmt.Fprintf(&b, "## %s\n\n", s.Heading)
			switch {
			case imagePath != "":
				fmt.Fprintf(&b, "![%s](%s)\n", s.Heading, imagePath)
			case len(s.Image) > 0:
				fmt.Fprintf(&b, "_timeline image, %d bytes_\n", len(s.Image))
			default:
				b.WriteString("_no timeline image_\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
