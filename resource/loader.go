// Package resource 并发取齐台账声明的字体与图片资源。
package resource

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// fetchLimit 同时在途的资源请求数上限。
const fetchLimit = 4

// Set 是取齐后的资源集，按名字索引原始字节。
// FetchAll 返回后即为只读。
type Set struct {
	Fonts  map[string][]byte
	Images map[string][]byte
}

// Loader 解析资源定位串并取回字节。
// 支持三种定位串：本地路径（相对 BaseDir）、http(s) 地址、data: URI。
type Loader struct {
	BaseDir string
	Client  *http.Client
}

// NewLoader 返回以 baseDir 为根的加载器，HTTP 超时 30 秒。
func NewLoader(baseDir string) *Loader {
	return &Loader{
		BaseDir: baseDir,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchAll 并发取齐全部字体与图片。任何一项失败整体失败：
// 缺字体出不了字，缺图片也多半是台账写错了路径，宁可早报。
func (l *Loader) FetchAll(ctx context.Context, fonts, images map[string]string) (*Set, error) {
	set := &Set{
		Fonts:  map[string][]byte{},
		Images: map[string][]byte{},
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchLimit)

	for name, src := range fonts {
		g.Go(func() error {
			data, err := l.fetch(ctx, src)
			if err != nil {
				return fmt.Errorf("取字体 %s 失败: %w", name, err)
			}
			mu.Lock()
			set.Fonts[name] = data
			mu.Unlock()
			return nil
		})
	}
	for name, src := range images {
		g.Go(func() error {
			data, err := l.fetch(ctx, src)
			if err != nil {
				return fmt.Errorf("取图片 %s 失败: %w", name, err)
			}
			mu.Lock()
			set.Images[name] = data
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}

func (l *Loader) fetch(ctx context.Context, src string) ([]byte, error) {
	switch {
	case strings.HasPrefix(src, "data:"):
		return decodeDataURI(src)
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return l.fetchHTTP(ctx, src)
	default:
		path := src
		if !filepath.IsAbs(path) {
			path = filepath.Join(l.BaseDir, path)
		}
		return os.ReadFile(path)
	}
}

func (l *Loader) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// decodeDataURI 只认 base64 编码的 data: URI。
func decodeDataURI(uri string) ([]byte, error) {
	idx := strings.Index(uri, ",")
	if idx < 0 {
		return nil, fmt.Errorf("data URI 缺少逗号分隔")
	}
	meta, payload := uri[:idx], uri[idx+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("data URI 仅支持 base64 编码")
	}
	return base64.StdEncoding.DecodeString(payload)
}
