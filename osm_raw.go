package osm2paths

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/beevik/etree"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/pkg/errors"
)

// OSMScanner common interface for OSM object streams
type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// Document parsed OSM document: declared bounds, nodes and ways in document order
type Document struct {
	Bounds *osm.Bounds
	Nodes  osm.Nodes
	Ways   osm.Ways
}

// OpenDocument reads OSM document from file. Format is guessed by file extension
func OpenDocument(filename string) (*Document, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(ErrParse, err.Error())
	}
	defer file.Close()

	ext := filepath.Ext(filename)
	switch ext {
	case ".osm", ".xml":
		return ReadDocument(file)
	case ".pbf":
		scanner := osmpbf.New(context.Background(), file, 4)
		defer scanner.Close()
		return scanDocument(scanner)
	default:
		return nil, errors.Wrap(ErrParse, fmt.Sprintf("File extension '%s' for file '%s' is not handled yet", ext, filename))
	}
}

// ReadDocument reads OSM XML document. Missing required attributes are reported as ErrParse
func ReadDocument(r io.Reader) (*Document, error) {
	tree := etree.NewDocument()
	if _, err := tree.ReadFrom(r); err != nil {
		return nil, errors.Wrap(ErrParse, err.Error())
	}
	root := tree.Root()
	if root == nil {
		return nil, errors.Wrap(ErrParse, "document has no root element")
	}
	doc := Document{}
	for _, element := range root.ChildElements() {
		switch element.Tag {
		case "bounds":
			bounds, err := parseBounds(element)
			if err != nil {
				return nil, errors.Wrap(err, "Can't parse bounds")
			}
			doc.Bounds = bounds
		case "node":
			node, err := parseNode(element)
			if err != nil {
				return nil, errors.Wrap(err, "Can't parse node")
			}
			doc.Nodes = append(doc.Nodes, node)
		case "way":
			way, err := parseWay(element)
			if err != nil {
				return nil, errors.Wrap(err, "Can't parse way")
			}
			doc.Ways = append(doc.Ways, way)
		}
	}
	return &doc, nil
}

// scanDocument collects nodes and ways from stream of OSM objects
func scanDocument(scanner OSMScanner) (*Document, error) {
	doc := Document{}
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			doc.Nodes = append(doc.Nodes, obj)
		case *osm.Way:
			doc.Ways = append(doc.Ways, obj)
		case *osm.Bounds:
			doc.Bounds = obj
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(ErrParse, err.Error())
	}
	// PBF keeps bounding box in file header
	if withHeader, ok := scanner.(interface {
		Header() (*osmpbf.Header, error)
	}); ok && doc.Bounds == nil {
		header, err := withHeader.Header()
		if err != nil {
			return nil, errors.Wrap(ErrParse, err.Error())
		}
		if header != nil {
			doc.Bounds = header.Bounds
		}
	}
	return &doc, nil
}

func requiredAttr(element *etree.Element, key string) (string, error) {
	attr := element.SelectAttr(key)
	if attr == nil {
		return "", errors.Wrap(ErrParse, fmt.Sprintf("<%s> has no '%s' attribute", element.Tag, key))
	}
	return attr.Value, nil
}

func requiredInt(element *etree.Element, key string) (int64, error) {
	text, err := requiredAttr(element, key)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, errors.Wrap(ErrParse, fmt.Sprintf("<%s> '%s' attribute: %s", element.Tag, key, err.Error()))
	}
	return value, nil
}

func requiredFloat(element *etree.Element, key string) (float64, error) {
	text, err := requiredAttr(element, key)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errors.Wrap(ErrParse, fmt.Sprintf("<%s> '%s' attribute: %s", element.Tag, key, err.Error()))
	}
	return value, nil
}

func parseBounds(element *etree.Element) (*osm.Bounds, error) {
	var err error
	bounds := osm.Bounds{}
	if bounds.MinLat, err = requiredFloat(element, "minlat"); err != nil {
		return nil, err
	}
	if bounds.MinLon, err = requiredFloat(element, "minlon"); err != nil {
		return nil, err
	}
	if bounds.MaxLat, err = requiredFloat(element, "maxlat"); err != nil {
		return nil, err
	}
	if bounds.MaxLon, err = requiredFloat(element, "maxlon"); err != nil {
		return nil, err
	}
	return &bounds, nil
}

func parseNode(element *etree.Element) (*osm.Node, error) {
	id, err := requiredInt(element, "id")
	if err != nil {
		return nil, err
	}
	lat, err := requiredFloat(element, "lat")
	if err != nil {
		return nil, err
	}
	lon, err := requiredFloat(element, "lon")
	if err != nil {
		return nil, err
	}
	tags, err := parseTags(element)
	if err != nil {
		return nil, err
	}
	return &osm.Node{ID: osm.NodeID(id), Lat: lat, Lon: lon, Tags: tags}, nil
}

func parseWay(element *etree.Element) (*osm.Way, error) {
	id, err := requiredInt(element, "id")
	if err != nil {
		return nil, err
	}
	refs := element.SelectElements("nd")
	nodes := make(osm.WayNodes, 0, len(refs))
	for _, nd := range refs {
		ref, err := requiredInt(nd, "ref")
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, osm.WayNode{ID: osm.NodeID(ref)})
	}
	tags, err := parseTags(element)
	if err != nil {
		return nil, err
	}
	return &osm.Way{ID: osm.WayID(id), Nodes: nodes, Tags: tags}, nil
}

func parseTags(element *etree.Element) (osm.Tags, error) {
	tagElements := element.SelectElements("tag")
	if len(tagElements) == 0 {
		return nil, nil
	}
	tags := make(osm.Tags, 0, len(tagElements))
	for _, tagElement := range tagElements {
		key, err := requiredAttr(tagElement, "k")
		if err != nil {
			return nil, err
		}
		tags = append(tags, osm.Tag{Key: key, Value: tagElement.SelectAttrValue("v", "")})
	}
	return tags, nil
}
