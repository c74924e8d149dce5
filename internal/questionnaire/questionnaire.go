// Package questionnaire holds the data-driven definition of the assessment
// form: sections A through L, their questions, option lists and collection
// defaults. Scoring only ever sees the answer map; this package is what the
// collection and reporting surfaces share.
package questionnaire

// Kind discriminates how a question is answered.
type Kind int

const (
	SingleChoice Kind = iota
	MultiSelect
	FreeText
)

type Question struct {
	Key     string
	Prompt  string
	Kind    Kind
	Options []string

	// Default is the collection-boundary default for single-choice
	// questions ("No" / the lowest ladder rung). Multi-select defaults to
	// nothing selected, free text to empty.
	Default string

	// Scored marks questions that feed the scoring pass. Narrative
	// follow-ups and all of section A are unscored.
	Scored bool
}

type Section struct {
	ID        string
	Title     string
	Questions []Question
}

var yesNo = []string{"Yes", "No"}

var frequencyOptions = []string{
	"Ad hoc / not defined",
	"Annually",
	"Quarterly",
	"Monthly",
	"Weekly or more often",
}

var backupOptions = []string{
	"No regular backups",
	"Monthly",
	"Weekly",
	"Daily or more often",
}

// DataCategories is the fixed universe of sensitive-data categories.
var DataCategories = []string{
	"Payment cards / debit / Mobile Money information",
	"Medical records",
	"Financial accounts",
	"Official ID documents or other identity information",
	"Intellectual property",
	"Other sensitive data",
}

// Sectors is the fixed universe of sectors of activity.
var Sectors = []string{
	"Water and Energy (electricity, gas, oil, water)",
	"Financial institution (bank, insurance, microfinance, collection, etc.)",
	"Sports betting / gambling",
	"Telecommunications / new technologies",
	"Healthcare / medical / provident fund",
	"Commerce / agro-industry",
	"Other",
}

// CoverageOptions is the fixed universe of requested coverage options.
var CoverageOptions = []string{
	"Business interruption",
	"Data restoration",
	"Ransomware / cyber extortion",
	"Social engineering fraud",
	"Regulatory fines",
	"Reputational harm",
	"Media liability",
}

func yesNoQ(key, prompt string) Question {
	return Question{Key: key, Prompt: prompt, Kind: SingleChoice, Options: yesNo, Default: "No", Scored: true}
}

func textQ(key, prompt string) Question {
	return Question{Key: key, Prompt: prompt, Kind: FreeText}
}

var sections = []Section{
	{
		ID:    "A",
		Title: "General Information",
		Questions: []Question{
			textQ("A_company_name", "Legal entity name"),
			textQ("A_address", "Registered office address"),
			textQ("A_websites", "Website(s) / Domain(s)"),
			textQ("A_activity", "Description of activity"),
			textQ("A_employees", "Number of employees"),
			textQ("A_revenue", "Annual turnover (last financial year, currency)"),
			textQ("A_years", "Years in operation"),
			textQ("A_primary_contact", "Primary cybersecurity contact (Name, Role, Email, Phone)"),
		},
	},
	{
		ID:    "B",
		Title: "Data and Sensitive Information",
		Questions: []Question{
			{
				Key:     "B_types",
				Prompt:  "What types of sensitive information do you store or process? (select all that apply)",
				Kind:    MultiSelect,
				Options: DataCategories,
				Scored:  true,
			},
		},
	},
	{
		ID:    "C",
		Title: "Organisation and Security Policies",
		Questions: []Question{
			yesNoQ("C_infosec_policy", "Do you have a formal information security policy?"),
			yesNoQ("C_privacy_policy", "Do you have an up-to-date privacy policy?"),
			yesNoQ("C_training", "Do employees receive regular cybersecurity awareness training?"),
			yesNoQ("C_encryption", "Are electronic data encrypted (at rest and/or in transit)?"),
			textQ("C_encryption_details", "If yes, specify media/systems where encryption is used"),
			yesNoQ("C_access_revocation", "Are user access rights removed promptly when staff leave or change roles?"),
			yesNoQ("C_pentesting", "Do you perform periodic penetration tests or vulnerability assessments?"),
			yesNoQ("C_patch_management", "Are identified vulnerabilities corrected quickly (patch management process)?"),
		},
	},
	{
		ID:    "D",
		Title: "Infrastructure and IT Controls",
		Questions: []Question{
			yesNoQ("D_firewall_ids", "Do you have firewalls and intrusion detection/prevention systems in place?"),
			yesNoQ("D_malware_protection", "Do you have malware protection for remote access, email, and mobile devices?"),
			yesNoQ("D_mfa", "Do you use multi-factor authentication (MFA) for critical systems?"),
			yesNoQ("D_endpoint_security", "Is endpoint protection deployed across the network?"),
			{
				Key:     "D_backup_freq",
				Prompt:  "What is the frequency of your data backups?",
				Kind:    SingleChoice,
				Options: backupOptions,
				Default: "No regular backups",
				Scored:  true,
			},
			textQ("D_backup_location", "Where are backups stored? (on-site / off-site / cloud, etc.)"),
		},
	},
	{
		ID:    "E",
		Title: "Incident Response and History",
		Questions: []Question{
			yesNoQ("E_ir_plan", "Do you have a formal incident response plan?"),
			yesNoQ("E_incidents_5y", "Have you experienced any cyber incidents in the last 5 years?"),
			textQ("E_incident_details", "If yes, briefly describe the incidents"),
			yesNoQ("E_potential_claims", "Are you aware of any events that could lead to a cyber insurance claim?"),
			textQ("E_claim_details", "If yes, briefly describe these events"),
		},
	},
	{
		ID:    "F",
		Title: "Activities and Professional Exposures",
		Questions: []Question{
			{
				Key:     "F_sectors",
				Prompt:  "Which of the following sectors best describe your organisation? (select all that apply)",
				Kind:    MultiSelect,
				Options: Sectors,
				Scored:  true,
			},
			textQ("F_other", "If 'Other', please specify"),
		},
	},
	{
		ID:    "G",
		Title: "Requested Coverage Details",
		Questions: []Question{
			textQ("G_amount", "Desired insured amount and deductible (not directly scored)"),
			{
				Key:     "G_options",
				Prompt:  "Which coverage options are you interested in? (select all that apply)",
				Kind:    MultiSelect,
				Options: CoverageOptions,
				Scored:  true,
			},
		},
	},
	{
		ID:    "H",
		Title: "Supplier and Third-Party Security",
		Questions: []Question{
			yesNoQ("H_supplier_access", "Do suppliers or third parties have access to your systems or sensitive data?"),
			yesNoQ("H_thirdparty_policy", "Do you have a security policy for third parties?"),
			yesNoQ("H_contract_clauses", "Do your contracts include cybersecurity clauses with suppliers?"),
			yesNoQ("H_update_policy", "Do you have a policy for keeping software up to date?"),
			textQ("H_software_list", "List key software used in your organisation"),
		},
	},
	{
		ID:    "I",
		Title: "Security Indicators and Monitoring",
		Questions: []Question{
			yesNoQ("I_dashboards", "Do you use dashboards or KPIs to monitor cyber security?"),
			{
				Key:     "I_reporting_freq",
				Prompt:  "How often are security reports provided to management?",
				Kind:    SingleChoice,
				Options: frequencyOptions,
				Default: "Ad hoc / not defined",
				Scored:  true,
			},
		},
	},
	{
		ID:    "J",
		Title: "Tests and Audits",
		Questions: []Question{
			yesNoQ("J_external_audit", "Have you had an external security audit performed?"),
			textQ("J_last_audit_date", "If yes, date of the last audit"),
			yesNoQ("J_results_to_management", "Were the audit results shared with senior management?"),
		},
	},
	{
		ID:    "K",
		Title: "Awareness and Security Culture",
		Questions: []Question{
			yesNoQ("K_risky_behaviour_policy", "Do you have a policy for managing risky user behaviour (e.g., clear rules on acceptable use)?"),
			yesNoQ("K_phishing_sims", "Do you conduct phishing simulations?"),
			{
				Key:     "K_phishing_freq",
				Prompt:  "If yes, how often are phishing simulations carried out?",
				Kind:    SingleChoice,
				Options: frequencyOptions,
				Default: "Ad hoc / not defined",
				Scored:  true,
			},
		},
	},
	{
		ID:    "L",
		Title: "Mobile Devices and BYOD",
		Questions: []Question{
			yesNoQ("L_byod_policy", "Do you have a Bring Your Own Device (BYOD) policy?"),
			yesNoQ("L_personal_device_security", "Are personal devices required to use security controls (e.g., MDM, encryption, PIN/biometrics)?"),
		},
	},
}

var questionsByKey = func() map[string]Question {
	m := make(map[string]Question)
	for _, s := range sections {
		for _, q := range s.Questions {
			m[q.Key] = q
		}
	}
	return m
}()

// Sections returns the full form definition in display order.
func Sections() []Section {
	return sections
}

// Find returns the question registered under key.
func Find(key string) (Question, bool) {
	q, ok := questionsByKey[key]
	return q, ok
}

// RequiredKeys returns the keys of all scored questions in form order.
func RequiredKeys() []string {
	var keys []string
	for _, s := range sections {
		for _, q := range s.Questions {
			if q.Scored {
				keys = append(keys, q.Key)
			}
		}
	}
	return keys
}
