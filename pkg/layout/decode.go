package layout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format 描述文件格式
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath 根据文件扩展名推断格式
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported layout file extension: %q", filepath.Ext(path))
	}
}

// Decode 解析描述并校验
//
// 空输入（只含空白或注释）在所有格式下都返回 ErrInvalid。
func Decode(data []byte, format Format) (*Node, error) {
	var n Node

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty %s document", ErrInvalid, format)
	}

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &n)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if len(md.Keys()) == 0 {
			return nil, fmt.Errorf("%w: empty %s document", ErrInvalid, format)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown toml keys: %v", ErrInvalid, undecoded)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&n); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: empty %s document", ErrInvalid, format)
			}
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&n); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: trailing data after json document", ErrInvalid)
		}
	default:
		return nil, fmt.Errorf("unsupported layout format: %q", format)
	}

	if err := n.Validate(); err != nil {
		return nil, err
	}
	return &n, nil
}

// Load 读取并解析描述文件，格式由扩展名决定
func Load(path string) (*Node, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout load failed (%s): %w", path, err)
	}

	n, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("layout parse failed (%s): %w", path, err)
	}
	return n, nil
}
