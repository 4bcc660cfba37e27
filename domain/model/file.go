package model

import (
	"path/filepath"
	"strings"
)

// FileType represents the decoder used for a file
type FileType int

const (
	// FileTypeCSV represents comma-delimited files; also used for unknown extensions
	FileTypeCSV FileType = iota
	// FileTypeTSV represents tab-delimited files
	FileTypeTSV
	// FileTypeLTSV represents labeled tab-separated values
	FileTypeLTSV
	// FileTypeXLSX represents Excel workbooks (first sheet only)
	FileTypeXLSX
	// FileTypeParquet represents Parquet files
	FileTypeParquet
)

// CompressionType represents the compression wrapping a file
type CompressionType int

const (
	// CompressionNone represents no compression
	CompressionNone CompressionType = iota
	// CompressionGZ represents gzip compression
	CompressionGZ
	// CompressionBZ2 represents bzip2 compression
	CompressionBZ2
	// CompressionXZ represents xz compression
	CompressionXZ
	// CompressionZSTD represents zstd compression
	CompressionZSTD
)

// File extensions
const (
	// ExtCSV is the CSV file extension
	ExtCSV = ".csv"
	// ExtTSV is the TSV file extension
	ExtTSV = ".tsv"
	// ExtLTSV is the LTSV file extension
	ExtLTSV = ".ltsv"
	// ExtXLSX is the Excel XLSX file extension
	ExtXLSX = ".xlsx"
	// ExtParquet is the Parquet file extension
	ExtParquet = ".parquet"
	// ExtGZ is the gzip compression extension
	ExtGZ = ".gz"
	// ExtBZ2 is the bzip2 compression extension
	ExtBZ2 = ".bz2"
	// ExtXZ is the xz compression extension
	ExtXZ = ".xz"
	// ExtZSTD is the zstd compression extension
	ExtZSTD = ".zst"
)

// String returns the file type name
func (ft FileType) String() string {
	switch ft {
	case FileTypeTSV:
		return "TSV"
	case FileTypeLTSV:
		return "LTSV"
	case FileTypeXLSX:
		return "XLSX"
	case FileTypeParquet:
		return "Parquet"
	default:
		return "CSV"
	}
}

// String returns the compression type name
func (c CompressionType) String() string {
	switch c {
	case CompressionGZ:
		return "gzip"
	case CompressionBZ2:
		return "bzip2"
	case CompressionXZ:
		return "xz"
	case CompressionZSTD:
		return "zstd"
	default:
		return "none"
	}
}

// Extension returns the file extension for the compression type
func (c CompressionType) Extension() string {
	switch c {
	case CompressionGZ:
		return ExtGZ
	case CompressionBZ2:
		return ExtBZ2
	case CompressionXZ:
		return ExtXZ
	case CompressionZSTD:
		return ExtZSTD
	default:
		return ""
	}
}

// File is a path together with how it must be decoded.
type File struct {
	path        string
	fileType    FileType
	compression CompressionType
}

// NewFile creates a new File, detecting type and compression from the extension.
func NewFile(path string) *File {
	compression := DetectCompressionType(path)
	return &File{
		path:        path,
		fileType:    DetectFileType(path),
		compression: compression,
	}
}

// Path returns the file path
func (f *File) Path() string {
	return f.path
}

// Type returns the file type
func (f *File) Type() FileType {
	return f.fileType
}

// Compression returns the compression type
func (f *File) Compression() CompressionType {
	return f.compression
}

// IsCompressed returns true if the file is compressed
func (f *File) IsCompressed() bool {
	return f.compression != CompressionNone
}

// DetectCompressionType detects the compression type from a file path
func DetectCompressionType(path string) CompressionType {
	p := strings.ToLower(path)
	switch {
	case strings.HasSuffix(p, ExtGZ):
		return CompressionGZ
	case strings.HasSuffix(p, ExtBZ2):
		return CompressionBZ2
	case strings.HasSuffix(p, ExtXZ):
		return CompressionXZ
	case strings.HasSuffix(p, ExtZSTD):
		return CompressionZSTD
	default:
		return CompressionNone
	}
}

// RemoveCompressionExtension removes the compression extension from a file path if present
func RemoveCompressionExtension(path string) string {
	ext := DetectCompressionType(path).Extension()
	return path[:len(path)-len(ext)]
}

// DetectFileType detects the decoder from the extension left after removing compression.
// Unknown extensions are read as CSV.
func DetectFileType(path string) FileType {
	switch strings.ToLower(filepath.Ext(RemoveCompressionExtension(path))) {
	case ExtTSV:
		return FileTypeTSV
	case ExtLTSV:
		return FileTypeLTSV
	case ExtXLSX:
		return FileTypeXLSX
	case ExtParquet:
		return FileTypeParquet
	default:
		return FileTypeCSV
	}
}
