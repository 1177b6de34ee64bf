package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
)

// splitGPX splits the route in inputFile into files of at most pointsPerFile
// route points each, written to {outputDir}/{baseName}/{baseName}_split_{n}.gpx.
// It returns the number of files written. A file without any rtept elements
// yields (0, nil); the caller decides how to report that.
func splitGPX(inputFile, outputDir string, pointsPerFile int) (int, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(inputFile); err != nil {
		return 0, fmt.Errorf("error parsing GPX file %s: %w", inputFile, err)
	}

	totalPoints := len(doc.FindElements("//rtept"))
	if totalPoints == 0 {
		return 0, nil
	}

	// The first rte in document order is the route. Well-formed input has
	// exactly one.
	if doc.FindElement("//rte") == nil {
		return 0, fmt.Errorf("no rte element in GPX file %s", inputFile)
	}

	baseName := strings.TrimSuffix(filepath.Base(inputFile), ".gpx")
	fileDir := filepath.Join(outputDir, baseName)
	if err := os.MkdirAll(fileDir, 0o755); err != nil {
		return 0, fmt.Errorf("error creating output directory %s: %w", fileDir, err)
	}

	numChunks := (totalPoints + pointsPerFile - 1) / pointsPerFile
	for i := 0; i < numChunks; i++ {
		part := i + 1
		outputFile := filepath.Join(fileDir, fmt.Sprintf("%s_split_%d.gpx", baseName, part))
		if err := writeChunk(doc, outputFile, baseName, part, i*pointsPerFile, pointsPerFile); err != nil {
			return i, err
		}
	}
	return numChunks, nil
}

// writeChunk builds one output document from a fresh copy of the source
// document and writes it. offset is the index of the chunk's first point in
// the original rtept sequence.
func writeChunk(src *etree.Document, outputFile, baseName string, part, offset, pointsPerFile int) error {
	doc := src.Copy()
	points := doc.FindElements("//rtept")

	end := offset + pointsPerFile
	if end > len(points) {
		end = len(points)
	}
	chunk := points[offset:end]

	partName := fmt.Sprintf("%s (Part %d)", baseName, part)
	if metaName := doc.FindElement("//metadata/name"); metaName != nil {
		metaName.SetText(partName)
	}

	rte := doc.FindElement("//rte")
	routeName := rte.SelectElement("name")
	if routeName != nil {
		routeName.SetText(partName)
	}

	// Rebuild the route: drop every child, put the renamed name back first,
	// then the chunk's points in order.
	for len(rte.Child) > 0 {
		rte.RemoveChild(rte.Child[0])
	}
	if routeName != nil {
		rte.AddChild(routeName)
	}
	for i, point := range chunk {
		if i == 0 {
			setPointType(point, "start")
		}
		if i == len(chunk)-1 {
			// On a single-point chunk this overwrites "start".
			setPointType(point, "destination")
		}
		rte.AddChild(point)
	}

	doc.Indent(2)
	if err := doc.WriteToFile(outputFile); err != nil {
		return fmt.Errorf("error writing %s: %w", outputFile, err)
	}
	return nil
}

// setPointType sets the text of the point's type child, creating the child if
// the point has none.
func setPointType(point *etree.Element, value string) {
	typeEl := point.SelectElement("type")
	if typeEl == nil {
		typeEl = point.CreateElement("type")
	}
	typeEl.SetText(value)
}
