// Package pkg holds the wordstack libraries.
//
// # Overview
//
// Wordstack turns the word counts found under a path into a horizontal bar
// chart in which every bar begins where the previous one ends. The pkg
// directory is organized as:
//
//  1. [histogram] - Word counts, ordering and the stacked layout
//  2. [fetch] - The word-count service client and the Fetcher interface
//  3. [source/local] - Counting words in files and zip archives locally
//  4. [render] - Chart geometry and the SVG, PNG and JSON sinks
//  5. [pipeline] - Orchestration (fetch → transform → render)
//  6. [config] - TOML and YAML configuration files
//
// Supporting packages: [errors] (error codes), [httputil] (retries),
// [observability] (hooks) and [buildinfo] (version stamping).
//
// # Architecture
//
//	word-count service / local files
//	         ↓
//	    [fetch] or [source/local] (word → count, in source order)
//	         ↓
//	    [histogram] (order, top N, offsets)
//	         ↓
//	    [render/chart] (bar and axis geometry)
//	         ↓
//	    [render/sink] (SVG, PNG, JSON)
//
// # Quick Start
//
//	client, _ := fetch.NewClient("http://localhost:8080/path/words")
//	words, _ := client.Fetch(ctx, "/data/books")
//
//	entries, _ := histogram.Transform(words.Sorted(histogram.OrderCount))
//	c := chart.Build(entries, chart.DefaultDimensions())
//	svg := sink.RenderSVG(c)
package pkg
