// Package prompt owns the two prompts the analyzer works with: the
// instruction sent to the vision model alongside each image, and the solver
// prompt built around the model's JSON answer.
package prompt

import "fmt"

// AnalysisInstruction is sent with every image. The model is expected to
// answer with a single JSON object in one of the shapes listed below.
const AnalysisInstruction = `Analyze the provided image, which contains a technical or aptitude question.
First, determine the question type from the options: "mcq", "run-code", "coding", or "unknown".
Then extract the relevant information and format it strictly as a single JSON object according to
the structure defined below for the determined type. Infer "subject" (e.g. OS, DBMS, Java, Aptitude)
and "language" (e.g. Java, C++, Python, C) where possible from the context.
If you can identify a question number (e.g. Q1, Question 2), include it as "question_number".

JSON output formats:

For type "mcq":
{
  "type": "mcq",
  "subject": "<inferred subject>",
  "language": "<language, if any>",
  "question_number": "<number, if visible>",
  "question_text": "<full question statement>",
  "options": ["<option A>", "<option B>", "..."],
  "raw_text": "<all text visible in the image>"
}

For type "run-code":
{
  "type": "run-code",
  "subject": "<inferred subject>",
  "language": "<language of the snippet>",
  "question_number": "<number, if visible>",
  "question_text": "<what is being asked about the snippet>",
  "code": "<the code snippet, verbatim>",
  "options": ["<option A>", "..."],
  "raw_text": "<all text visible in the image>"
}

For type "coding":
{
  "type": "coding",
  "subject": "<inferred subject>",
  "language": "<required language, if stated>",
  "question_number": "<number, if visible>",
  "question_text": "<full problem statement>",
  "function_signature": "<signature or stub, if given>",
  "constraints": ["<constraint>", "..."],
  "examples": [{"input": "<input>", "output": "<output>", "explanation": "<optional>"}],
  "raw_text": "<all text visible in the image>"
}

For type "unknown":
{
  "type": "unknown",
  "raw_text": "<all text visible in the image>"
}

Output only the JSON object. Any text outside the JSON is an error.`

// solverTemplate wraps the model's structured answer for a downstream LLM.
// Exactly one substitution point; keep it free of format verbs otherwise.
const solverTemplate = `You're an expert problem solver and programmer. Think deeply and act like you're solving a real-world problem in a coding interview or a competitive programming contest.

You are given a problem described in the JSON format below. Your task is to understand the problem from this structured data and generate a detailed, human-readable version of the question, clearly explaining:

1. The type of question (e.g., coding, MCQ, run-code),
2. The problem statement in a clean and easy-to-read way,
3. The function signature or expected output if applicable,
4. The constraints, input and output formats, and
5. Any examples/test cases if given.

Use the information in the JSON as your only source. Be precise, concise, and clear. Think like someone preparing the problem for a coding platform or exam.

Here is the JSON:

%s

Now, give me a working solution for this problem. For coding questions use the given language if one is stated, otherwise give the solution in C++.`

// Build embeds the analysis payload verbatim into the solver template. The
// payload is never inspected: a malformed or error payload goes in as-is.
func Build(jsonData string) string {
	return fmt.Sprintf(solverTemplate, jsonData)
}
