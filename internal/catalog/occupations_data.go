package catalog

import "github.com/alexanderramin/ozpath/internal/domain"

// occupations are the key MLTSSL occupations with their assessing bodies.
var occupations = []domain.Occupation{
	{ANZSCO: "133111", Title: "Construction Project Manager", List: domain.ListMLTSSL, AssessingAuthority: "VETASSESS"},
	{ANZSCO: "233211", Title: "Civil Engineer", List: domain.ListMLTSSL, AssessingAuthority: "Engineers Australia"},
	{ANZSCO: "233311", Title: "Electrical Engineer", List: domain.ListMLTSSL, AssessingAuthority: "Engineers Australia"},
	{ANZSCO: "233512", Title: "Mechanical Engineer", List: domain.ListMLTSSL, AssessingAuthority: "Engineers Australia"},
	{ANZSCO: "234111", Title: "Agricultural Consultant", List: domain.ListMLTSSL, AssessingAuthority: "VETASSESS"},
	{ANZSCO: "241111", Title: "Early Childhood Teacher", List: domain.ListMLTSSL, AssessingAuthority: "AITSL"},
	{ANZSCO: "251211", Title: "Medical Diagnostic Radiographer", List: domain.ListMLTSSL, AssessingAuthority: "ASMIRT"},
	{ANZSCO: "251212", Title: "Medical Radiation Therapist", List: domain.ListMLTSSL, AssessingAuthority: "ASMIRT"},
	{ANZSCO: "251213", Title: "Nuclear Medicine Technologist", List: domain.ListMLTSSL, AssessingAuthority: "ANZSNM"},
	{ANZSCO: "251214", Title: "Sonographer", List: domain.ListMLTSSL, AssessingAuthority: "ASAR"},
	{ANZSCO: "251311", Title: "Environmental Health Officer", List: domain.ListMLTSSL, AssessingAuthority: "VETASSESS"},
	{ANZSCO: "251312", Title: "Occupational Health and Safety Advisor", List: domain.ListMLTSSL, AssessingAuthority: "VETASSESS"},
	{ANZSCO: "251411", Title: "Optometrist", List: domain.ListMLTSSL, AssessingAuthority: "OCANZ"},
	{ANZSCO: "252411", Title: "Occupational Therapist", List: domain.ListMLTSSL, AssessingAuthority: "OTC"},
	{ANZSCO: "252511", Title: "Physiotherapist", List: domain.ListMLTSSL, AssessingAuthority: "APC"},
	{ANZSCO: "252611", Title: "Podiatrist", List: domain.ListMLTSSL, AssessingAuthority: "ANZPAC"},
	{ANZSCO: "252711", Title: "Audiologist", List: domain.ListMLTSSL, AssessingAuthority: "VETASSESS"},
	{ANZSCO: "252712", Title: "Speech Pathologist", List: domain.ListMLTSSL, AssessingAuthority: "SPA"},
	{ANZSCO: "261111", Title: "ICT Business Analyst", List: domain.ListMLTSSL, AssessingAuthority: "ACS"},
	{ANZSCO: "261112", Title: "Systems Analyst", List: domain.ListMLTSSL, AssessingAuthority: "ACS"},
	{ANZSCO: "261311", Title: "Analyst Programmer", List: domain.ListMLTSSL, AssessingAuthority: "ACS"},
	{ANZSCO: "261312", Title: "Developer Programmer", List: domain.ListMLTSSL, AssessingAuthority: "ACS"},
	{ANZSCO: "261313", Title: "Software Engineer", List: domain.ListMLTSSL, AssessingAuthority: "ACS"},
	{ANZSCO: "263111", Title: "Computer Network and Systems Engineer", List: domain.ListMLTSSL, AssessingAuthority: "ACS"},
	{ANZSCO: "272311", Title: "Clinical Psychologist", List: domain.ListMLTSSL, AssessingAuthority: "APS"},
	{ANZSCO: "272399", Title: "Psychologist (nec)", List: domain.ListMLTSSL, AssessingAuthority: "APS"},
	{ANZSCO: "272511", Title: "Social Worker", List: domain.ListMLTSSL, AssessingAuthority: "AASW"},
	{ANZSCO: "321111", Title: "Automotive Electrician", List: domain.ListMLTSSL, AssessingAuthority: "TRA"},
	{ANZSCO: "321211", Title: "Motor Mechanic (General)", List: domain.ListMLTSSL, AssessingAuthority: "TRA"},
	{ANZSCO: "321212", Title: "Diesel Motor Mechanic", List: domain.ListMLTSSL, AssessingAuthority: "TRA"},
	{ANZSCO: "331111", Title: "Bricklayer", List: domain.ListMLTSSL, AssessingAuthority: "TRA"},
	{ANZSCO: "331211", Title: "Carpenter and Joiner", List: domain.ListMLTSSL, AssessingAuthority: "TRA"},
	{ANZSCO: "331212", Title: "Carpenter", List: domain.ListMLTSSL, AssessingAuthority: "TRA"},
	{ANZSCO: "331213", Title: "Joiner", List: domain.ListMLTSSL, AssessingAuthority: "TRA"},
	{ANZSCO: "333211", Title: "Fibrous Plasterer", List: domain.ListMLTSSL, AssessingAuthority: "TRA"},
	{ANZSCO: "333212", Title: "Solid Plasterer", List: domain.ListMLTSSL, AssessingAuthority: "TRA"},
	{ANZSCO: "334111", Title: "Plumber (General)", List: domain.ListMLTSSL, AssessingAuthority: "TRA"},
	{ANZSCO: "334112", Title: "Airconditioning and Mechanical Services Plumber", List: domain.ListMLTSSL, AssessingAuthority: "TRA"},
	{ANZSCO: "334113", Title: "Drainer", List: domain.ListMLTSSL, AssessingAuthority: "TRA"},
	{ANZSCO: "334114", Title: "Gasfitter", List: domain.ListMLTSSL, AssessingAuthority: "TRA"},
	{ANZSCO: "334115", Title: "Roof Plumber", List: domain.ListMLTSSL, AssessingAuthority: "TRA"},
}
