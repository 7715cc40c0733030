package constant

const (
	SummaryPrompt = `You are an expert academic assistant. Create a comprehensive summary of the following document.

Document:
%s

Instructions:
1. Open with a one-paragraph overview of what the document is about.
2. List the key points as short bullet items.
3. Close with the main takeaways a student should remember.
4. Use markdown headings and keep the summary under 500 words.`

	FlashcardsPrompt = `You are an expert educator. Create exactly %d study flashcards from the following document.

Document:
%s

Instructions:
1. Each card must test one concrete fact or concept from the document.
2. Output MUST be a valid JSON array, nothing else:
[{"question": "...", "answer": "...", "difficulty": "Basic|Intermediate|Advanced", "category": "...", "hint": "..."}]
3. Mix difficulties. Keep answers concise but complete.`

	QuizPrompt = `You are an expert educator. Create exactly %d multiple choice questions from the following document.

Document:
%s

Instructions:
1. Every question must be answerable from the document alone.
2. Output MUST be a valid JSON array, nothing else:
[{"question": "...", "options": ["...", "...", "...", "..."], "correct_answer": 0, "explanation": "...", "difficulty": "Basic|Intermediate|Advanced"}]
3. Each question has exactly 4 options and "correct_answer" is the zero-based index of the right one.`

	AskPrompt = `You are a helpful study assistant. Answer the question using ONLY the document below.

Document:
%s
%s
Question: %s

Instructions:
1. Answer directly and cite the relevant part of the document.
2. If the document does not contain the answer, say so explicitly.
3. Keep the answer under 300 words.`

	KeywordsPrompt = `Analyze the following document and extract its main topic and key terms.

Document:
%s

Output MUST be valid JSON, nothing else:
{"main_topic": "...", "keywords": ["...", "..."]}

Return 5 to 8 keywords, most important first.`

	SuggestedQuestionsPrompt = `You are a study assistant. Based on the document below, suggest %d questions a student should ask to understand it better.

Document:
%s

Output MUST be a valid JSON array of strings, nothing else:
["question 1", "question 2"]`
)
