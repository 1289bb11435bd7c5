// Package serializer provides encoding and decoding of structured data in
// multiple formats.
//
// # Overview
//
// The serializer package handles conversion between data structures and
// various output formats including JSON, YAML, and human-readable tables. It
// supports both encoding (writing data) and decoding (reading data) with
// automatic format detection from file extensions.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, compact representation
//   - Suitable for API responses and programmatic consumption
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - Suitable for configuration files and version control
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened key/value representation
//   - Suitable for terminal/console viewing
//   - Write-only (no deserialization support)
//
// # Usage - Encoding
//
// Write to stdout (YAML):
//
//	writer := serializer.NewStdoutWriter(serializer.FormatYAML)
//	if err := writer.Serialize(ctx, data); err != nil {
//	    log.Fatal(err)
//	}
//
// Write to a file, falling back to stdout when the path is empty:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatJSON, "catalog.json")
//	defer func() {
//	    if c, ok := writer.(serializer.Closer); ok {
//	        c.Close()
//	    }
//	}()
//	if err := writer.Serialize(ctx, data); err != nil {
//	    log.Fatal(err)
//	}
//
// # Usage - Decoding
//
// Read from a file with automatic format detection:
//
//	catalog, err := serializer.FromFile[Catalog]("catalog.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Read from a custom io.Reader:
//
//	reader, err := serializer.NewReader(serializer.FormatYAML, strings.NewReader(doc))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var config Config
//	if err := reader.Deserialize(&config); err != nil {
//	    log.Fatal(err)
//	}
//
// # Format Detection
//
// File extension-based detection:
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table
//   - Other → JSON (default)
//
// # Resource Management
//
// Always close readers and writers that manage files:
//
//	reader, err := serializer.NewFileReader(serializer.FormatYAML, "catalog.yaml")
//	if err != nil {
//	    return err
//	}
//	defer reader.Close()
//
// Stdout-based writers don't require closing but Close() is safe to call.
package serializer
