// Package toc keeps a Markdown table of contents in sync with the
// document's headings.
//
// The pipeline is linear: Load reads the document and finds the sentinel
// markers, ExtractHeadings walks the lines once, BuildEntries assigns each
// heading a unique anchor, Render formats the bullet list, and Splice puts
// it back between the markers. Update runs all of it and writes the file
// only when the content changed.
//
//	res, err := toc.Update("Index.md", toc.DefaultMarkers())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Changed)
package toc
