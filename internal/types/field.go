package types

// Field is a professional category a résumé is classified into.
type Field string

// Known fields, in taxonomy order.
const (
	FieldDataScience            Field = "Data Science"
	FieldWebDevelopment         Field = "Web Development"
	FieldAndroidDevelopment     Field = "Android Development"
	FieldUIUX                   Field = "UI/UX"
	FieldArtificialIntelligence Field = "Artificial Intelligence"
	FieldCybersecurity          Field = "Cybersecurity"
	FieldCloudComputing         Field = "Cloud Computing"
	FieldSoftwareDevelopment    Field = "Software Development"
	FieldBusinessAnalyst        Field = "Business Analyst"
	FieldProductManagement      Field = "Product Management"
	FieldMobileAppDevelopment   Field = "Mobile App Development"
	FieldGameDevelopment        Field = "Game Development"
	FieldFinance                Field = "Finance"
	FieldHR                     Field = "HR"
	FieldDigitalMarketing       Field = "Digital Marketing"
	FieldBlockchain             Field = "Blockchain"
	FieldDevOps                 Field = "DevOps"
	FieldUIUXDesign             Field = "UI/UX Design"
	FieldARVR                   Field = "AR/VR"
	FieldIoT                    Field = "IoT"

	// FieldGeneral is returned when no taxonomy keyword matches.
	FieldGeneral Field = "General"
)

func (f Field) String() string {
	return string(f)
}
