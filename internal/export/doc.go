// Package export provides the orchestration logic for writing a chart to
// image and vector files.
//
// # Manager
//
// The Manager coordinates the export process:
//
//  1. Configure a chart model from settings
//  2. Render segments and the animation plan
//  3. Encode every configured format concurrently
//  4. Write files atomically under the output path
//
// # Basic Usage
//
//	manager := export.NewManager(settings, func(event export.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	paths, err := manager.Export(ctx, "sales", parts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Formats
//
//   - png, jpeg: the fully drawn chart
//   - svg: stroked arcs, revealed with SMIL animations when animated
//   - gif: the reveal rendered frame by frame, FramesPerUnit frames per
//     time unit
//
// # Concurrency
//
// Formats and GIF frames are rendered in parallel, limited by
// settings.Workers. Cancelling the context stops pending work.
package export
