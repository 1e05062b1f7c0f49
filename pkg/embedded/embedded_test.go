package embedded

import (
	"embed"
	"strings"
	"testing"
)

//go:embed testdata
var testFS embed.FS

func TestUninitialized(t *testing.T) {
	// 注意：测试间共享包级状态，此测试必须在 Init 之前的状态下验证
	if initialized {
		t.Skip("embedded 已被其他测试初始化")
	}

	if IsInitialized() {
		t.Error("初始化前 IsInitialized() 应返回 false")
	}
	if _, err := ReadFile("testdata/sample.yaml"); err == nil {
		t.Error("初始化前 ReadFile 应返回错误")
	}
	if Exists("testdata/sample.yaml") {
		t.Error("初始化前 Exists 应返回 false")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS)

	if !IsInitialized() {
		t.Fatal("Init 后 IsInitialized() 应返回 true")
	}

	data, err := ReadFile("testdata/sample.yaml")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "altText") {
		t.Errorf("读取内容不正确: %q", string(data))
	}

	// "./" 前缀应被标准化
	if _, err := ReadFile("./testdata/sample.yaml"); err != nil {
		t.Errorf("带 ./ 前缀的路径应可读取: %v", err)
	}
}

func TestExists(t *testing.T) {
	Init(testFS)

	if !Exists("testdata/sample.yaml") {
		t.Error("存在的文件 Exists 应返回 true")
	}
	if Exists("testdata/missing.yaml") {
		t.Error("不存在的文件 Exists 应返回 false")
	}
}

func TestOpen(t *testing.T) {
	Init(testFS)

	f, err := Open("testdata/sample.yaml")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Error("文件大小不应为 0")
	}
}
