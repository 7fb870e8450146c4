// Package local counts words in a directory tree without a word-count
// service.
//
// [Counter] implements fetch.Fetcher. It walks the directory named by the
// path, counts every ".txt" file it finds and reads ".zip" archives in
// memory, counting their ".txt" entries and descending into archives
// nested inside them. Nothing is extracted to disk.
//
// Words are split on whitespace, stripped of the punctuation marks
// . ? ! : ; and , then lowercased. Counts are returned in alphabetical
// order.
//
// A path that does not exist or is not a directory yields an empty result,
// matching what a word-count service reports for such a path. Files that
// cannot be read are logged and skipped.
package local
