package lessonplan

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/mapper"
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/models"
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/output"
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/resource"
)

// Map validates state and renders a snapshot of it into xlsx bytes.
// A form the layout cannot hold fails with ErrInvalidForm.
func Map(state *models.FormState, src mapper.Source) ([]byte, error) {
	if state == nil {
		return nil, fmt.Errorf("%w: no form", ErrInvalidForm)
	}
	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	data, err := mapper.Map(state.Snapshot(), src)
	if err == nil {
		return data, nil
	}
	if errors.Is(err, mapper.ErrUnreadableWorkbook) {
		return nil, fmt.Errorf("%w: %w", ErrWorkbookCorrupt, err)
	}
	if errors.Is(err, mapper.ErrTooManyRows) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	genErr := &GenerationError{Step: "map", Err: err}
	var we *mapper.WriteError
	if errors.As(err, &we) {
		genErr.Cell = we.Cell
	}
	return nil, genErr
}

const maxNameAttempts = 1000

// Result describes a written lesson plan.
type Result struct {
	Path string
	Mode Mode
	Size int
}

// Generator runs the generate action: validate, load the template, map,
// and write the workbook in one step.
// Overlapping calls on one Generator are serialized.
type Generator struct {
	Loader   resource.Loader
	Resolver output.Resolver
	Now      func() time.Time
	Logger   *slog.Logger

	mu        sync.Mutex
	lastStamp string
	seq       int
}

// Generate writes the lesson plan described by state and returns where it went.
func (g *Generator) Generate(state *models.FormState, opts Options) (*Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	started := time.Now()
	logger := g.logger().With("mode", string(opts.Mode))

	res, err := g.generate(state, opts)
	if err != nil {
		logger.Error("lesson plan generation failed",
			"kind", KindOf(err).String(),
			"duration_ms", time.Since(started).Milliseconds(),
			"error", err)
		return nil, err
	}
	logger.Info("lesson plan generated",
		"path", res.Path,
		"bytes", res.Size,
		"duration_ms", time.Since(started).Milliseconds())
	return res, nil
}

func (g *Generator) generate(state *models.FormState, opts Options) (*Result, error) {
	if state == nil {
		return nil, fmt.Errorf("%w: no form", ErrInvalidForm)
	}
	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	src := mapper.Blank()
	switch opts.Mode {
	case ModeBlank:
	case ModeTemplate:
		data, err := g.loadTemplate(opts.TemplateID)
		if err != nil {
			return nil, err
		}
		src = mapper.Template(data)
	default:
		return nil, &GenerationError{Step: "map", Err: fmt.Errorf("unknown mode %q", opts.Mode)}
	}

	// The whole workbook is built in memory before anything touches disk.
	data, err := Map(state, src)
	if err != nil {
		return nil, err
	}

	path, err := g.resolvePath()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := output.WriteFile(path, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return &Result{Path: path, Mode: opts.Mode, Size: len(data)}, nil
}

func (g *Generator) loadTemplate(id string) ([]byte, error) {
	if g.Loader == nil {
		return nil, fmt.Errorf("%w: no loader configured", ErrResourceNotFound)
	}
	data, err := g.Loader.Load(id)
	if errors.Is(err, resource.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrResourceNotFound, err)
	}
	if err != nil {
		return nil, &GenerationError{Step: "load", Err: err}
	}
	return data, nil
}

// resolvePath picks a file name that no earlier call of this Generator and
// no existing file uses. Names are unique per second, so repeats within the
// same second get a growing sequence suffix.
func (g *Generator) resolvePath() (string, error) {
	resolver := g.Resolver
	if resolver == nil {
		resolver = output.DirResolver{}
	}

	now := g.now()
	stamp := output.FileName(now, 0)
	if stamp == g.lastStamp {
		g.seq++
	} else {
		g.lastStamp, g.seq = stamp, 0
	}

	for range maxNameAttempts {
		path, err := resolver.Resolve(output.FileName(now, g.seq))
		if err != nil {
			return "", err
		}
		if !output.Exists(path) {
			return path, nil
		}
		g.seq++
	}
	return "", fmt.Errorf("no free file name for %s after %d attempts", stamp, maxNameAttempts)
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
