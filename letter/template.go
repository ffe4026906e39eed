// Package letter renders the appeal letter. Rendering is pure: identical
// fields always give byte-identical output.
package letter

// Version identifies the letter text below. Bump it whenever the wording changes.
const Version = "2024.1"

// Tokens replaced by Render. Field values never contain braces, so a single
// replacement pass cannot be confused by user input.
const (
	tokenClaimNumber = "{{claim_number}}"
	tokenResidence   = "{{state_of_residence}}"
	tokenCareClause  = "{{care_clause}}"
	tokenName        = "{{name}}"
)

const bodyTemplate = `To the Claims Review Department,

I am writing to appeal the denial of my insurance claim #{{claim_number}}. According to my rights under state and federal insurance regulations, I formally request the following information regarding this determination:

1. The complete medical rationale used to determine my treatment was not medically necessary, including:
   * Specific clinical findings that led to this conclusion
   * Any alternative treatments that were considered
   * An explanation of why my treating physician's recommendations were overruled

2. All clinical criteria, guidelines, and evidence-based standards used in making this determination, including:
   * Copies of any internal protocols or review criteria
   * Names and publication dates of any medical literature consulted
   * Any third-party guidelines referenced in the review process

3. The following information about the reviewing physician:
    * Full name and credentials
    * Board certification specialty
    * Current state license number
    * Proof of active medical registration in {{state_of_residence}}{{care_clause}}
    * Confirmation that the reviewer has recent clinical experience with my condition

4. Statistical data regarding approval/denial rates for similar claims reviewed by this physician, including:
    * Data from the past 12 months
    * Comparative data for similar cases within your organization

5. Copies of all materials reviewed in making this determination, including:
    * All medical records
    * All correspondence between providers
    * Any internal notes or communications
    * All diagnostic test results
    * Any peer-reviewed literature considered

Under {{state_of_residence}} Insurance Code and ERISA regulations, insurance determinations must be made by appropriately qualified healthcare professionals working within their scope of practice. I request written confirmation that these requirements were met in my case, including documentation that the reviewing physician has current clinical experience with my specific medical condition.

Please note that ERISA regulations require you to provide all relevant documents used in making this determination free of charge. I expect a complete response within 30 days as required by federal law. If any of the requested information cannot be provided, please cite the specific regulation that prevents its disclosure.

Additionally, please confirm receipt of this appeal and provide the name and direct contact information of the person handling this review.

Thank you for your prompt attention to this matter.

Sincerely,
{{name}}`

const subjectPrefix = "Appeal Request: Claim #"
