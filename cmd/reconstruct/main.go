package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"sss/app"
	"sss/config"
	"sss/logs"
)

const defaultInput = "testcase.json"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run 返回进程退出码，便于测试
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("reconstruct", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		input      = fs.String("input", "", "share file (JSON); prompts on stdin when empty and no files are given")
		configFile = fs.String("config", "", "config file path")
		fieldName  = fs.String("field", "", "reconstruct over a prime field: secp256k1|bn256|ed25519")
		trace      = fs.Bool("trace", false, "print every lagrange term")
		level      = fs.String("log", "", "log level: trace|debug|verbose|info|warn|error")
		storePath  = fs.String("store", "", "result ledger directory (enables the ledger)")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// 1. 加载配置，命令行参数覆盖文件
	cfg, err := config.LoadFromFile(*configFile)
	if err != nil {
		logs.Error("%v", err)
		return 1
	}
	if *fieldName != "" {
		cfg.Reconstruct.Field = *fieldName
	}
	if *trace {
		cfg.Reconstruct.Trace = true
	}
	if *level != "" {
		cfg.Log.Level = *level
	}
	if *storePath != "" {
		cfg.Store.Enabled = true
		cfg.Store.Path = *storePath
	}

	a, err := app.NewApp(cfg)
	if err != nil {
		logs.Error("%v", err)
		return 1
	}
	defer a.Close()

	// 2. 确定输入文件
	paths := fs.Args()
	if *input != "" {
		paths = append([]string{*input}, paths...)
	}
	if len(paths) == 0 {
		paths = []string{prompt(stdin, stdout)}
	}

	// 3. 单个文件输出完整过程，多个文件只输出结果
	if len(paths) == 1 {
		fmt.Fprintf(stdout, "\nReading from: %s\n", paths[0])
		res := a.SolveFiles(context.Background(), paths)[0]
		if res.Err != nil {
			reportError(stderr, res.Path, res.Err)
			return 1
		}
		printReport(stdout, res.Result, cfg.Reconstruct.Trace)
		return 0
	}

	code := 0
	for _, res := range a.SolveFiles(context.Background(), paths) {
		if res.Err != nil {
			reportError(stderr, res.Path, res.Err)
			code = 1
			continue
		}
		fmt.Fprintf(stdout, "Secret for %s: %s\n", res.Path, res.Result.Secret)
	}
	return code
}

// prompt 交互式读取文件名，直接回车使用默认值
func prompt(stdin io.Reader, stdout io.Writer) string {
	fmt.Fprint(stdout, "Enter JSON filename: ")
	line, _ := bufio.NewReader(stdin).ReadString('\n')
	if name := strings.TrimSpace(line); name != "" {
		return name
	}
	return defaultInput
}

func reportError(w io.Writer, path string, err error) {
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintf(w, "\nError: File '%s' not found!\n", path)
		fmt.Fprintln(w, "Please make sure the file exists in the current directory.")
	case errors.As(err, &syntaxErr):
		fmt.Fprintf(w, "\nError: Invalid JSON in '%s'\n", path)
		fmt.Fprintln(w, "Please check your JSON syntax.")
	default:
		fmt.Fprintf(w, "\nAn error occurred: %v\n", err)
	}
}
