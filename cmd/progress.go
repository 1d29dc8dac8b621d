package cmd

import (
	"github.com/schollz/progressbar/v3"
	"github.com/verity-data/fixgen/internal/sink"
)

// progressSink advances a table-level progress bar after each write.
type progressSink struct {
	next sink.Sink
	bar  *progressbar.ProgressBar
}

func trackSink(next sink.Sink, tables int) sink.Sink {
	bar := progressbar.NewOptions(tables,
		progressbar.OptionSetDescription("writing tables"),
		progressbar.OptionClearOnFinish(),
	)
	return &progressSink{next: next, bar: bar}
}

func (p *progressSink) WriteTable(t sink.Table) error {
	if err := p.next.WriteTable(t); err != nil {
		return err
	}
	p.bar.Add(1)
	return nil
}
