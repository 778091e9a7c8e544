package narrative

import (
	"encoding/json"
	"fmt"
)

func buildExplainPrompt(req *ExplainRequest) string {
	admetJSON, _ := json.Marshal(req.ADMET)
	return fmt.Sprintf(`You are BioGraph AI, an expert Lead Discovery Scientist.
Perform a critical analysis of this drug candidate.

INPUT DATA:
- Name: %s
- SMILES: %s
- Target Protein: %s
- Binding Score: %.2f
- ADMET Profile: %s

TASK:
Return a valid JSON object with exactly these keys:
{
    "summary": "2-line executive summary.",
    "mechanism": "How does it actually bind? Discuss interactions.",
    "safety_analysis": "Critical review of ADMET risks.",
    "clinical_potential": "High/Medium/Low",
    "conclusion": "Final verdict"
}

IMPORTANT: Return ONLY the JSON. No markdown formatting.`,
		req.Name, req.SMILES, req.TargetID, req.Score, admetJSON)
}

func buildChatPrompt(req *ChatRequest) string {
	name := req.DrugContext["name"]
	score := req.DrugContext["score"]
	admet := req.DrugContext["admet"]
	return fmt.Sprintf(`You are 'BioGraph AI', an intelligent research companion.
- Be professional but conversational.
- Ground every claim in the drug context below.

DRUG CONTEXT:
Name: %v
Score: %v
ADMET: %v

USER QUESTION: "%s"`, name, score, admet, req.Question)
}

func buildOptimizePrompt(req *OptimizeRequest) string {
	return fmt.Sprintf(`You are a Medicinal Chemist. Suggest a structural modification to improve the drug.

DRUG: %s (SMILES: %s)
TARGET: %s

Return JSON with keys:
{ "original_flaw": "...", "suggestion": "...", "optimized_smiles": "...", "reasoning": "..." }
Return ONLY JSON.`, req.Name, req.SMILES, req.TargetID)
}
