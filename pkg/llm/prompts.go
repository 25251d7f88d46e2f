package llm

import "fmt"

const jobSuggestionPrompt = `Based on the following resume text, suggest 5 job positions that would be a good match for this person's skills and experience.
For each position, provide:
1. The job title
2. A brief explanation (1-2 sentences) why this job matches their skills

Resume text:
%s

Format your response as a JSON array of objects, where each object has 'title' and 'reason' properties.`

const coursePrompt = `Respond ONLY with a valid JSON object matching the structure below.
DO NOT include any explanations, markdown, or text outside the JSON.
If you cannot comply, return {}.

{
  "courseTitle": %q,
  "courseLevel": %q,
  "courseGoal": %q,
  "modules": [
    {
      "moduleId": 1,
      "moduleTitle": "Module Title",
      "moduleDescription": "A concise description of what this module covers",
      "subsections": [
        {
          "subsectionId": 1,
          "subsectionTitle": "Clear and specific subsection title",
          "content": "Detailed educational content in markdown format. Include examples, explanations, and practical applications. Minimum 300 words per subsection."
        }
      ]
    }
  ]
}

The learner describes their current state as: %q

IMPORTANT GUIDELINES:
1. Each subsection title should be specific and searchable (good for finding relevant YouTube videos)
2. Ensure logical progression of topics from basic to advanced within the course
3. Include practical exercises or challenges where appropriate
4. Maintain consistent depth across all subsections
5. DO NOT use markdown code blocks
6. Your response must be valid JSON only, with no additional text before or after.`

const videoKeywordPrompt = `Generate a short and effective keyword that can be searched for on YouTube for the following search query:
%q. In this query, give top priority to %q followed by %q and then %q.
The keyword should not be more than 4 words and should be a short phrase relevant to the topic.`

func buildJobSuggestionPrompt(resumeText string) string {
	return fmt.Sprintf(jobSuggestionPrompt, resumeText)
}

func buildCoursePrompt(input CourseInput) string {
	return fmt.Sprintf(coursePrompt, input.Title, input.Level, input.Goal, input.CurrentState)
}

func buildVideoKeywordPrompt(input KeywordInput) string {
	return fmt.Sprintf(videoKeywordPrompt, input.SearchQuery, input.SubsectionTitle, input.ModuleTitle, input.CourseTitle)
}
