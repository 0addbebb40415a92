package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ByLCY/lijinbu/dsl"
	"github.com/ByLCY/lijinbu/layout"
	"github.com/ByLCY/lijinbu/ledger"
	"github.com/ByLCY/lijinbu/renderer"
	canvasrenderer "github.com/ByLCY/lijinbu/renderer/canvas"
	"github.com/ByLCY/lijinbu/resource"
)

func main() {
	input := flag.String("in", "examples/demo.ledger", "台账文件路径")
	output := flag.String("out", "output/lijinbu.pdf", "PDF 输出路径")
	dataJSON := flag.String("data", "", "JSON 记录数组，给出时替代台账中的 entries")
	emailCfg := flag.String("emailcfg", "", "邮件投递配置 JSON 路径，给出时生成后寄出")
	flag.Parse()

	var records []ledger.Record
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &records); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}

	if err := run(*input, *output, records, *emailCfg); err != nil {
		log.Fatalf("生成礼金簿失败: %v", err)
	}
	fmt.Printf("已生成礼金簿：%s\n", *output)
}

// run 串联解析、资源取齐、整理、布局、渲染与投递。
func run(inputPath, outputPath string, records []ledger.Record, emailCfgPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("无法打开台账文件 %s: %w", inputPath, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(file)
	if err != nil {
		return fmt.Errorf("解析台账失败: %w", err)
	}
	if len(records) == 0 {
		records = doc.Records()
	}

	loader := resource.NewLoader(filepath.Dir(inputPath))
	set, err := loader.FetchAll(context.Background(), doc.FontSources(), doc.ImageSources())
	if err != nil {
		return fmt.Errorf("取齐资源失败: %w", err)
	}

	rend, err := canvasrenderer.New(set)
	if err != nil {
		return err
	}

	opts := layout.Options{
		Measurer: rend,
		Title:    string(doc.Title),
	}
	applyOptions(doc.KVs(), &opts)
	// 先补默认：Prepare 的分页必须用与布局一致的每页格数。
	opts.Normalize()

	prep, err := ledger.Prepare(records, opts.ItemsPerPage)
	if err != nil {
		return fmt.Errorf("整理记录失败: %w", err)
	}

	result, err := layout.Build(prep, opts)
	if err != nil {
		return fmt.Errorf("布局计算失败: %w", err)
	}

	var r renderer.Renderer = rend
	pdfBytes, err := r.Render(result)
	if err != nil {
		return fmt.Errorf("渲染 PDF 失败: %w", err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}

	if emailCfgPath != "" {
		cfg, err := loadEmailConfig(emailCfgPath)
		if err != nil {
			return err
		}
		if err := sendEmail(cfg, opts.Title, outputPath); err != nil {
			return fmt.Errorf("寄出礼金簿失败: %w", err)
		}
	}
	return nil
}

// applyOptions 把台账 meta/options 段的键值落进布局选项。
// 未知键静默忽略，台账得以先于程序演进。
func applyOptions(kvs map[string]dsl.Value, opts *layout.Options) {
	for key, v := range kvs {
		switch key {
		case "title":
			opts.Title = v.Text()
		case "subtitle":
			opts.Subtitle = v.Text()
		case "recorder":
			opts.Recorder = v.Text()
		case "cell-label":
			opts.CellLabel = v.Text()
		case "font":
			opts.Font = v.Text()
		case "cover-image":
			opts.CoverImage = v.Text()
		case "footer-template":
			opts.FooterTemplate = v.Text()
		case "items-per-page":
			if n, ok := v.Float(); ok {
				opts.ItemsPerPage = int(n)
			}
		case "part":
			if n, ok := v.Float(); ok {
				opts.Part = int(n)
			}
		case "part-count":
			if n, ok := v.Float(); ok {
				opts.PartCount = int(n)
			}
		case "part-grand-total":
			if n, ok := v.Float(); ok {
				opts.PartGrandTotal = n
			}
		case "initial-font-size":
			if size, ok := layout.ParseSize(v.Text()); ok {
				opts.InitialFontSize = size
			}
		case "min-font-size":
			if size, ok := layout.ParseSize(v.Text()); ok {
				opts.MinFontSize = size
			}
		case "letter-spacing":
			if size, ok := layout.ParseSize(v.Text()); ok {
				opts.LetterSpacing = size
			}
		case "column-order":
			if v.Text() == "rtl" {
				opts.ColumnOrder = layout.ColumnsRightToLeft
			}
		case "show-cover":
			if b, ok := v.Bool(); ok {
				opts.ShowCover = b
			}
		case "show-appendix":
			if b, ok := v.Bool(); ok {
				opts.ShowAppendix = b
			}
		case "show-summary":
			if b, ok := v.Bool(); ok {
				opts.ShowSummary = b
			}
		case "show-trailing":
			if b, ok := v.Bool(); ok {
				opts.ShowTrailing = b
			}
		default:
			if col, ok := colorKey(key); ok {
				if opts.Colors == nil {
					opts.Colors = map[string]string{}
				}
				opts.Colors[col] = v.Text()
			}
		}
	}
}

func colorKey(key string) (string, bool) {
	switch key {
	case "color-name":
		return layout.ColorName, true
	case "color-label":
		return layout.ColorLabel, true
	case "color-amount":
		return layout.ColorAmount, true
	case "color-cover":
		return layout.ColorCover, true
	case "color-pageinfo":
		return layout.ColorPageInfo, true
	default:
		return "", false
	}
}
