package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(body []byte) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Println(string(body))
		return
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{} // No timeout, AI calls can be slow
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func uploadPDF(path string) (*http.Response, []byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, nil, err
	}
	writer.Close()

	req, err := http.NewRequest("POST", baseURL+"/document/v1/upload", &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := (&http.Client{}).Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	color.Cyan("🚀 Starting Study Assistant API Test\n")

	if len(os.Args) < 2 {
		color.Red("Usage: go run scripts/test_api.go <path-to-pdf>")
		os.Exit(1)
	}
	pdfPath := os.Args[1]

	// 1. Health
	color.Yellow("\n[SYSTEM] 1. Health Check")
	resp, body, err := sendRequest("GET", "/system/v1/health", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 2. Upload
	color.Yellow("\n[DOCUMENT] 2. Upload PDF")
	resp, body, err = uploadPDF(pdfPath)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 3. Summary
	color.Yellow("\n[STUDY] 3. Generate Summary")
	resp, body, err = sendRequest("POST", "/study/v1/summary", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 4. Flashcards
	color.Yellow("\n[STUDY] 4. Generate Flashcards")
	resp, body, err = sendRequest("POST", "/study/v1/flashcards", map[string]interface{}{"num_cards": 5})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 5. Quiz
	color.Yellow("\n[STUDY] 5. Generate Quiz")
	resp, body, err = sendRequest("POST", "/study/v1/quiz", map[string]interface{}{"num_questions": 3})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 6. Ask
	color.Yellow("\n[STUDY] 6. Ask a Question")
	resp, body, err = sendRequest("POST", "/study/v1/ask", map[string]interface{}{"question": "What is the main topic of this document?"})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 7. Discover papers
	color.Yellow("\n[DISCOVERY] 7. Discover Papers")
	resp, body, err = sendRequest("POST", "/discovery/v1/papers", map[string]interface{}{"max_results": 5})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 8. API status
	color.Yellow("\n[SYSTEM] 8. API Status")
	resp, body, err = sendRequest("GET", "/system/v1/api-status", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	color.Cyan("\n✅ Done")
}
