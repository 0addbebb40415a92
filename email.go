package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gomail/gomail"
)

// EmailConfig 邮件投递配置，从 JSON 文件读入。
type EmailConfig struct {
	SMTP struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
	} `json:"smtp"`
	From string `json:"from"`
	To   string `json:"to"`
}

func loadEmailConfig(path string) (*EmailConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取邮件配置失败: %w", err)
	}
	var cfg EmailConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析邮件配置失败: %w", err)
	}
	return &cfg, nil
}

// sendEmail 将生成的 PDF 作为附件经 SMTP 寄出。
func sendEmail(cfg *EmailConfig, subject string, filenames ...string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.From)
	msg.SetHeader("To", cfg.To)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", "礼金簿见附件。<br>")

	for _, f := range filenames {
		msg.Attach(f)
	}

	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	return dialer.DialAndSend(msg)
}
