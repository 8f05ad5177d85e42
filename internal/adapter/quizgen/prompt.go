package quizgen

import "fmt"

const systemPrompt = `あなたは与えられたテキストから学習用のクイズを作成するアシスタントです。
問題と答えは必ずテキストに書かれている内容だけに基づいて作成し、テキストにない知識や推測を含めてはいけません。
出力は純粋なJSONのみとし、前置き・説明文・コードブロックなどJSON以外の文字は一切含めないでください。`

const userPromptTemplate = `次のテキストの内容に基づいて、一問一答形式のクイズを5問作成してください。

テキスト:
"""
%s
"""

出力は次のJSON形式に厳密に従ってください:
{"quizzes":[{"question":"問題文","answer":"答え"}]}

- "quizzes" には必ず5個のオブジェクトを含めること
- 各オブジェクトは文字列型の "question" と "answer" を持つこと`

// BuildUserPrompt embeds the sanitized text verbatim in the user instruction.
func BuildUserPrompt(text string) string {
	return fmt.Sprintf(userPromptTemplate, text)
}
