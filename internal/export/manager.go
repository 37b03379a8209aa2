package export

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/handiism/piechart/internal/anim"
	"github.com/handiism/piechart/internal/chart"
	"github.com/handiism/piechart/internal/config"
	"github.com/handiism/piechart/internal/demo"
	ioutils "github.com/handiism/piechart/internal/io"
	"github.com/handiism/piechart/internal/raster"
	"github.com/handiism/piechart/internal/svg"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents an export progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager renders a chart and writes it in every configured format.
type Manager struct {
	settings     *config.Settings
	imageService *ioutils.ImageService

	writtenFiles int32
	renderedGIF  int32
	totalGIF     int32

	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// NewManager creates a new export Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:     settings,
		imageService: ioutils.NewImageService(),
		onProgress:   onProgress,
	}
}

// Export renders parts and writes one file per configured format under
// settings.OutputPath. name fills the {name} placeholder of the file name
// format. It returns the written paths in format order.
func (m *Manager) Export(ctx context.Context, name string, parts []chart.Part) ([]string, error) {
	if err := m.settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	model := chart.NewModel()
	m.settings.ApplyTo(model)
	model.SetParts(parts)

	bounds := m.settings.Bounds()
	res := chart.Render(model, bounds)
	if len(res.Segments) == 0 {
		m.progress(ProgressEvent{Message: "Chart is empty, writing background only", Level: LevelWarning})
	}

	base := m.fileName(name, model.Mode(), len(parts))
	formats := uniqueFormats(m.settings.Formats)
	paths := make([]string, len(formats))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.Workers)

	for i, format := range formats {
		path := filepath.Join(m.settings.OutputPath, base+"."+format)
		paths[i] = path

		g.Go(func() error {
			data, err := m.encode(ctx, format, name, bounds, res)
			if err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error encoding %s: %v", format, err), Level: LevelError})
				return fmt.Errorf("encode %s: %w", format, err)
			}
			if err := ioutils.WriteFile(ctx, path, data); err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error writing %s: %v", path, err), Level: LevelError})
				return fmt.Errorf("write %s: %w", path, err)
			}
			atomic.AddInt32(&m.writtenFiles, 1)
			m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %s (%d bytes)", path, len(data)), Level: LevelSuccess})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// GetProgress returns the number of files written and GIF frames rendered.
func (m *Manager) GetProgress() (filesWritten, framesRendered, framesTotal int32) {
	return atomic.LoadInt32(&m.writtenFiles), atomic.LoadInt32(&m.renderedGIF), atomic.LoadInt32(&m.totalGIF)
}

func (m *Manager) encode(ctx context.Context, format, name string, bounds chart.Bounds, res chart.Result) ([]byte, error) {
	bg := m.background()

	switch format {
	case "png":
		return m.imageService.EncodePNG(ctx, raster.Render(bounds, bg, res.Segments, nil))
	case "jpeg":
		return m.imageService.EncodeJPEG(ctx, raster.Render(bounds, bg, res.Segments, nil), m.settings.JPEGQuality)
	case "svg":
		w := svg.NewWriter(name, bg, m.settings.TimeUnit())
		return []byte(w.Document(bounds, res.Segments, res.Plan)), nil
	case "gif":
		return m.encodeGIF(ctx, bounds, bg, res)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// encodeGIF renders the reveal frame by frame. Without a plan the GIF has
// a single, fully drawn frame.
func (m *Manager) encodeGIF(ctx context.Context, bounds chart.Bounds, bg color.Color, res chart.Result) ([]byte, error) {
	times := []float64{chart.AnimationDuration}
	if res.Plan != nil {
		times = anim.Frames(m.settings.FramesPerUnit)
	}
	atomic.StoreInt32(&m.totalGIF, int32(len(times)))
	m.progress(ProgressEvent{Message: fmt.Sprintf("Rendering %d GIF frames", len(times)), Level: LevelVerbose})

	frames := make([]image.Image, len(times))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.Workers)

	for i, t := range times {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fractions := res.Plan.Fractions(len(res.Segments), t)
			frames[i] = raster.Render(bounds, bg, res.Segments, fractions)
			atomic.AddInt32(&m.renderedGIF, 1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Without a background the canvas stays transparent, which the palette
	// has to be able to express.
	colors := make([]color.Color, 0, len(res.Segments)+1)
	if bg != nil {
		colors = append(colors, bg)
	} else {
		colors = append(colors, color.Transparent)
	}
	for _, seg := range res.Segments {
		colors = append(colors, seg.Color)
	}

	return m.imageService.EncodeGIF(ctx, frames, colors, m.frameDelay())
}

// frameDelay returns the GIF frame delay in 100ths of a second.
func (m *Manager) frameDelay() int {
	perFrame := m.settings.TimeUnit() / time.Duration(m.settings.FramesPerUnit)
	if delay := int(perFrame / (10 * time.Millisecond)); delay > 1 {
		return delay
	}
	return 1
}

func (m *Manager) background() color.Color {
	if m.settings.Background == "" {
		return nil
	}
	c, err := demo.ParseColor(m.settings.Background)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Invalid background %q, using transparent: %v", m.settings.Background, err), Level: LevelWarning})
		return nil
	}
	return c
}

// fileName computes the output base name from the file name format.
func (m *Manager) fileName(name string, mode chart.Mode, count int) string {
	fileName := m.settings.FileNameFormat
	if fileName == "" {
		fileName = "{name}"
	}
	if name == "" {
		name = "chart"
	}
	fileName = strings.ReplaceAll(fileName, "{name}", name)
	fileName = strings.ReplaceAll(fileName, "{mode}", mode.String())
	fileName = strings.ReplaceAll(fileName, "{count}", strconv.Itoa(count))
	return ioutils.SanitizeFileName(fileName)
}

func normalizeFormat(f string) string {
	f = strings.ToLower(strings.TrimSpace(f))
	if f == "jpg" {
		return "jpeg"
	}
	return f
}

// uniqueFormats normalizes formats and drops repeats, keeping the first
// occurrence so "jpg,jpeg" writes one file.
func uniqueFormats(formats []string) []string {
	seen := make(map[string]bool, len(formats))
	unique := make([]string, 0, len(formats))
	for _, f := range formats {
		f = normalizeFormat(f)
		if seen[f] {
			continue
		}
		seen[f] = true
		unique = append(unique, f)
	}
	return unique
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onProgress(event)
}
