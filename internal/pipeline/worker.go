package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/simcheck/internal/compare"
	"github.com/dgallion1/simcheck/internal/parser"
)

// Worker processes a single comparison job: extract text from both
// uploads, run the comparison, attach the result.
type Worker struct {
	log   *slog.Logger
	stats *CompareStats

	pdfFallback bool
}

func NewWorker(log *slog.Logger, stats *CompareStats, pdfFallback bool) *Worker {
	return &Worker{
		log:         log,
		stats:       stats,
		pdfFallback: pdfFallback,
	}
}

// Process runs the full comparison pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID)

	job.SetStatus(StatusParsing, "parsing")
	textA, err := w.extractText(job.fileDataA, job.FilenameA)
	if err != nil {
		log.Error("parse failed", "file", job.FilenameA, "error", err)
		job.AddError(fmt.Sprintf("parse %s: %s", job.FilenameA, err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	textB, err := w.extractText(job.fileDataB, job.FilenameB)
	if err != nil {
		log.Error("parse failed", "file", job.FilenameB, "error", err)
		job.AddError(fmt.Sprintf("parse %s: %s", job.FilenameB, err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	if ctx.Err() != nil {
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "comparing")
		return
	}

	job.SetStatus(StatusComparing, "comparing")
	start := time.Now()
	result := compare.Compare([]byte(textA), []byte(textB))
	w.stats.Record(time.Since(start).Milliseconds())

	job.SetResult(result)
	job.SetStatus(StatusCompleted, "done")
	log.Info("comparison complete",
		"combined_score", result.CombinedScore,
		"spans", len(result.Spans),
	)
}

func (w *Worker) extractText(data []byte, filename string) (string, error) {
	p := parser.ForFile(filename)
	if pdf, ok := p.(*parser.PDFParser); ok {
		pdf.FallbackPdftotext = w.pdfFallback
	}
	return p.Parse(bytes.NewReader(data), filename)
}
