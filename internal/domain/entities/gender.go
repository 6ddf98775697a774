package entities

// Gender representa o gênero registrado em um prontuário
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// AllGenders lista os valores aceitos pelo caminho validado de entrada
var AllGenders = []Gender{GenderMale, GenderFemale, GenderOther}

// IsValid verifica se o valor é um dos três aceitos
func (g Gender) IsValid() bool {
	for _, v := range AllGenders {
		if g == v {
			return true
		}
	}
	return false
}
