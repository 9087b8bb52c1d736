package config

// Config is the top-level chatbot configuration, corresponding to
// .apmchat.yml.
type Config struct {
	Port            int      `yaml:"port" koanf:"port"`
	ServiceName     string   `yaml:"service_name" koanf:"service_name"`
	FAQFile         string   `yaml:"faq_file" koanf:"faq_file"`
	TrainingFile    string   `yaml:"training_file" koanf:"training_file"`
	StaticDir       string   `yaml:"static_dir" koanf:"static_dir"`
	StaticAllow     []string `yaml:"static_allow" koanf:"static_allow"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	InstagramHandle string   `yaml:"instagram_handle" koanf:"instagram_handle"`
}
