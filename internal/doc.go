// Package internal coordinates scanning, preprocessing, extraction, caching,
// and file-watching for the cssx extraction pipeline.
//
// Engine ties the pieces together: it walks a project tree with scanner.Scanner,
// runs each matched file through the preprocessor.Registry, feeds the result to
// extractor.Extractor, and stores results in Cache so unchanged files are skipped
// on the next run. StartWatching drives the same pipeline incrementally off
// fsnotify events for `cssx watch`.
package internal
