package inmemcat

import "github.com/dieti/studyplan/core/catalog"

// Seed returns the LM Data Science catalog as published for the current
// academic year: curricular pairs per sub-path, the free-choice pool, the
// per-sub-path exclusions and the fixed second-year components.
func Seed() catalog.Snapshot {
	mk := catalog.MakeCourse

	return catalog.Snapshot{
		Curricula: catalog.Curriculum{
			"Curriculum FUNDAMENTAL SCIENCES": {
				"FSE/PH - CURRICULUM FUNDAMENTAL SCIENCES/PHYSICS INSPIRED METHODOLOGIES": {
					CurricularI: mk("Advanced Statistical Learning and Modeling", "U5450", 12, "DIETI – LM Data Science", "Second", "first",
						"https://www.docenti.unina.it/#!/professor/524f4245525441534943494c49414e4f53434c52525436344535324638333953/schede_insegnamento"),
					CurricularII: mk("Physics Informed Machine Learning", "U****", 6, "DIETI - LM Data Science", "Second", "second"),
				},
				"PDS FSE/MM - CURRICULUM FUNDAMENTAL SCIENCES/MATHEMATICAL METHODOLOGIES": {
					CurricularI: mk("Algorithms and Parallel Computing and Computational Complexity", "U5430", 12, "DMRC - LM Ing. Matematica D71", "Second", "first&second",
						"https://www.docenti.unina.it/#!/professor/414e49454c4c4f4d5552414e4f4d524e4e4c4c3731543230493037334c/schede_insegnamento",
						"https://www.docenti.unina.it/#!/professor/4749554c49414e4f4c414343455454494c4343474c4e3534443233463833394c/schede_insegnamento"),
					CurricularII: mk("Operational Research", "U1624", 6, "DMRC - LM Ing. Matematica D71", "Second", "first",
						"https://www.docenti.unina.it/#!/professor/44414e49454c454645524f4e4546524e444e4c38355232384638333944/programmi/shedainsegnamento"),
				},
			},
			"Curriculum INFORMATION TECHNOLOGIES": {
				"PDS ITE/TS - CURRICULUM INFORMATION TECHNOLOGIES/TEXT AND SPEECH PROCESSING": {
					CurricularI: mk("Multimedia Information Retrieval and Text Mining", "U5441", 12, "DIETI – LM Data Science", "Second", "first&second",
						"https://www.docenti.unina.it/#!/professor/414e544f4e494f204d4152494152494e414c4449524e4c4e4e4d37355232374239363359/schede_insegnamento",
						"https://www.docenti.unina.it/#!/professor/414e4e41434f52415a5a4143525a4e4e4136344c35374c37383144/schede_insegnamento"),
					CurricularII: mk("Speech Processing", "U6636", 6, "DIETI – LM Data Science", "Second", "second",
						"https://www.docenti.unina.it/#!/professor/4652414e434553434f43555455474e4f435447464e4336304d31364638333948/schede_insegnamento"),
				},
				"PDS ITE/SV - CURRICULUM INFORMATION TECHNOLOGIES/SIGNAL AND VIDEO PROCESSING": {
					CurricularI: mk("Information Theory and Signals Theory", "U5444", 12, "DMRC - LM Ing. Matematica D71", "Second", "first&second",
						"https://www.docenti.unina.it/#!/professor/414e544f4e4941204d4152494154554c494e4f544c4e4e4e4d3731503532463833394e/programmi/programma",
						"https://www.docenti.unina.it/#!/professor/4d4152494f54414e4441544e444d524136334c31354135313246/programmi/shedainsegnamento"),
					CurricularII: mk("Image and Video Processing for Autonomous Driving", "U3423", 6, "DII - LM Autonomous Vehicle Engineering", "Second", "second",
						"https://www.docenti.unina.it/#!/professor/4c55495341564552444f4c4956415652444c535537324d36324c38343551/programmi/shedainsegnamento"),
				},
				"PDS ITE/RS - CURRICULUM INFORMATION TECHNOLOGIES/ STATISTICS AND ROBOTICS FOR HEALTH": {
					CurricularI: mk("Advanced Statistical Learning and Modeling", "U5450", 12, "DMRC - DIETI – LM Data Science", "Second", "first",
						"https://www.docenti.unina.it/#!/professor/524f4245525441534943494c49414e4f53434c52525436344535324638333953/schede_insegnamento"),
					CurricularII: mk("Robotics for Bioengineering", "U1579", 6, "LM Ing. Automazione e Robotica", "Second", "second",
						"https://www.docenti.unina.it/#!/professor/46414e4e59464943554349454c4c4f464343464e5937345236304639313248/programmi/shedainsegnamento"),
				},
				"PDS ITE/IA - CURRICULUM INFORMATION TECHNOLOGIES/INDUSTRIAL APPLICATIONS": {
					CurricularI: mk("Advanced Statistical Learning and Modeling", "U5450", 12, "DMRC - DIETI – LM Data Science", "Second", "first",
						"https://www.docenti.unina.it/#!/professor/524f4245525441534943494c49414e4f53434c52525436344535324638333953/schede_insegnamento"),
					CurricularII: mk("Statistical Methods for Industrial Process Monitoring", "U2659", 6, "DMRC - LM Ing. Matematica D71", "Second", "first",
						"https://www.docenti.unina.it/#!/professor/414e544f4e494f4c45504f52454c50524e544e37394c32374137383353/programmi/programma"),
				},
				"PDS ITE/AI - CURRICULUM INFORMATION TECHNOLOGIES/DATA SECURITY": {
					CurricularI: mk("Data Security and Computer Forensics", "U5447", 12, "DMRC - DIETI – LM Informatica", "Second", "second",
						"https://www.docenti.unina.it/#!/professor/524f424552544f4e4154454c4c414e544c52525438334c32334637393953/schede_insegnamento",
						"https://www.docenti.unina.it/#!/professor/4c4f52454e5a4f4c41555241544f4c52544c4e5a37304332325a3133335a/programmi/shedainsegnamento"),
					CurricularII: mk("Algorithm Design", "U3524", 6, "DIETI – LM Data Science", "Second", "first",
						"https://www.docenti.unina.it/#!/professor/464142494f4d4f47415645524f4d475646424138334533314837303341/programmi/shedainsegnamento"),
				},
			},
			"Curriculum PUBLIC ADMINISTRATION, ECONOMY AND MANAGEMENT – ECO": {
				"PDS ECO - CURRICULUM PUBLIC ADMINISTRATION, ECONOMY AND MANAGEMENT": {
					CurricularI: mk("Computational Statistical and Generalized Linear Models", "U5453", 12, "DIETI – LM Data Science", "Second", "first",
						"https://www.docenti.unina.it/#!/professor/414e544f4e494f4427414d42524f53494f444d424e544e3730533239413738334e/schede_insegnamento"),
					CurricularII: mk("Financial Time Series Analysis", "U6373", 6, "DISES – LM Economics and Finance DH5", "Second", "first",
						"https://www.docenti.unina.it/#!/professor/4341524d454c41494f52494f52494f434d4c38354336324638333951/schede_insegnamento"),
				},
			},
			"Curriculum INTELLIGENT SYSTEMS - ISY": {
				"PDS ISY - CURRICULUM INTELLIGENT SYSTEMS": {
					CurricularI: mk("Computational Intelligence and Machine Learning for Physics", "U5460", 12, "DFEP – LM Physics", "Second", "second",
						"https://www.docenti.unina.it/#!/professor/46455244494e414e444f4449204d415254494e4f444d5246444e3635433235463833394b/programmi/shedainsegnamento"),
					CurricularII: mk("Generative Artificial Intelligence", "U****", 6, "DIETI – LM Data Science", "Second", "first"),
				},
			},
		},

		FreeChoice: []catalog.Course{
			mk("Advanced Statistical Learning and Modeling", "U5450", 12, "DIETI – LM Data Science", "Second", "I",
				"https://www.docenti.unina.it/#!/professor/524f4245525441534943494c49414e4f53434c52525436344535324638333953/schede_insegnamento"),
			mk("AI Systems Engineering", "U5494", 6, "DIETI – LM Ing. Informatica", "Second", "I",
				"https://www.docenti.unina.it/#!/professor/524f424552544f5049455452414e54554f4e4f50545252525438305332344632323448/programmi/shedainsegnamento"),
			mk("Astroinformatics", "U1205", 6, "DFEP – LM Fisica", "Second", "II",
				"https://www.docenti.unina.it/#!/professor/53544546414e4f434156554f544943565453464e38324130374837303359/programmi"),
			mk("Biometric Systems", "U3525", 6, "DIETI – LM Informatica", "Second", "II",
				"https://www.docenti.unina.it/#!/professor/44414e49454c52494343494f524343444e4c37384831365a3131344d/programmi"),
			mk("Computational Intelligence", "U7219", 6, "DIETI – LM Data Science", "Second", "II",
				"https://www.docenti.unina.it/#!/professor/46455244494e414e444f4449204d415254494e4f444d5246444e3635433235463833394b/programmi/shedainsegnamento"),
			mk("Computational Statistical and Generalized Linear Models", "U5453", 12, "DIETI – LM Data Science", "Second", "I",
				"https://www.docenti.unina.it/#!/professor/414e544f4e494f4427414d42524f53494f444d424e544e3730533239413738334e/schede_insegnamento"),
			mk("Computer Vision", "U3523", 6, "DIETI – LM Informatica", "Second", "I",
				"https://www.docenti.unina.it/#!/professor/4652414e434553434f495347524f27534752464e4336365432364732373341/programmi/shedainsegnamento"),
			mk("Data Security", "U2652", 6, "DIETI – LM Data Science", "Second", "I",
				"https://www.docenti.unina.it/#!/professor/524f424552544f4e4154454c4c414e544c52525438334c32334637393953/programmi/shedainsegnamento"),
			mk("Data Visualization", "U2658", 6, "DIETI – LM Data Science", "Second", "II",
				"https://www.docenti.unina.it/#!/professor/524f424552544f5049455452414e54554f4e4f50545252525438305332344632323448/programmi/shedainsegnamento"),
			mk("Generative Artificial Intelligence", "U7215", 6, "DIETI – LM Data Science", "Second", "I"),
			mk("Financial Time Series Analysis", "U6373", 6, "DISES – LM Econ. and Finance", "Second", "I",
				"https://www.docenti.unina.it/#!/professor/4341524d454c41494f52494f52494f434d4c38354336324638333951/schede_insegnamento"),
			mk("Human robot interaction", "U3536", 6, "DIETI – LM Informatica", "Second", "I",
				"https://www.docenti.unina.it/#!/professor/53494c564941524f535349525353534c563737453536423936334e/programmi/shedainsegnamento"),
			mk("Image and Video Processing for Autonomous Driving", "U3423", 6, "DII - LM Autonomous Vehicle Engineering", "Second", "II",
				"https://www.docenti.unina.it/#!/professor/4c55495341564552444f4c4956415652444c535537324d36324c38343551/programmi/shedainsegnamento"),
			mk("Information Systems and Business Intelligence", "U3546", 6, "DIETI – LM Ing. Informatica", "Second", "I",
				"https://www.docenti.unina.it/#!/professor/464c4f5241414d41544f4d5441464c5237395036314c3235394c/schede_insegnamento"),
			mk("Information Theory", "U1644", 6, "DMRC - LM Ing. Matematica", "Second", "I",
				"https://www.docenti.unina.it/#!/professor/414e544f4e4941204d4152494154554c494e4f544c4e4e4e4d3731503532463833394e/schede_insegnamento"),
			mk("Methods for Artificial Intelligence", "U3522", 6, "DIETI – LM Informatica", "Second", "II",
				"https://www.docenti.unina.it/#!/professor/53494c564941524f535349525353534c563737453536423936334e/programmi/shedainsegnamento"),
			mk("Natural Language Processing", "U3539", 6, "DIETI – LM Informatica", "Second", "II",
				"https://www.docenti.unina.it/#!/professor/4652414e434553434f43555455474e4f435447464e4336304d31364638333948/programmi/shedainsegnamento"),
			mk("Physics Informed Machine Learning", "NI", 6, "DIETI – LM Data Science", "Second", "II"),
			mk("Preference learning", "U6641", 6, "DISES – LM Economia e Commercio", "Second", "I"),
			mk("Reliability and Risk in Aerospace Engineering", "U3835", 6, "DII – LM Ing. Aerospaziale", "Second", "II",
				"https://www.docenti.unina.it/#!/professor/4d415353494d494c49414e4f47494f5247494f4752474d534d3636523133463833394d/programmi/shedainsegnamento"),
			mk("Robotics Lab", "U2325", 6, "DIETI – LM Ing. Automazione e Robotica", "Second", "I",
				"https://www.docenti.unina.it/#!/professor/4a4f4e415448414e4341434143454343434a544838375431334638333949/programmi/programma"),
			mk("Software Architecture Design", "U5937", 6, "DIETI – LM Ing. Informatica", "Second", "I",
				"https://www.docenti.unina.it/#!/professor/414e4e4120524954414641534f4c494e4f46534c4e525436355334374639313245/schede_insegnamento"),
			mk("Speech Processing", "U6636", 6, "DIETI – LM Data Science", "Second", "II",
				"https://www.docenti.unina.it/#!/professor/4652414e434553434f43555455474e4f435447464e4336304d31364638333948/schede_insegnamento"),
			mk("Statistical Methods for Industrial Process Monitoring", "U2659", 6, "DMRC - LM Ing. Matematica", "Second", "I",
				"https://www.docenti.unina.it/#!/professor/414e544f4e494f4c45504f52454c50524e544e37394c32374137383353/programmi/programma"),
			mk("SW and methods for statistical analysis of economic data", "U6640", 6, "DIETI – LM Data Science", "Second", "II",
				"https://www.docenti.unina.it/#!/professor/414c464f4e534f494f44494345204427454e5a414443444c4e5337374c31384638333946/schede_insegnamento"),
			mk("Techniques of Text Analysis and Computational Linguistic", "U6635", 6, "DIETI – LM Data Science", "Second", "I",
				"https://www.docenti.unina.it/#!/professor/4652414e434553434f43555455474e4f435447464e4336304d31364638333948/programmi/shedainsegnamento"),
			mk("Text Mining", "U5902", 6, "DIETI – LM Data Science", "Second", "I",
				"https://www.docenti.unina.it/#!/professor/414e4e41434f52415a5a4143525a4e4e4136344c35374c37383144/schede_insegnamento"),
			mk("Advanced Microeconomics", "25880", 12, "DISES – LM Economics and Finance", "Second", "I",
				"https://www.docenti.unina.it/#!/professor/47494f56414e4e49494d4d4f5244494e4f4d4d52474e4e36394530384732373359/programmi/programma"),
			mk("Advanced Macroeconomics", "25881", 12, "DISES – LM Economics and Finance", "Second", "II",
				"https://www.docenti.unina.it/#!/professor/54554c4c494f4a415050454c4c494a5050544c4c35365032324638333955/programmi/shedainsegnamento"),
			mk("Economics of Regulation", "27381", 6, "DISES – LM Economics and Finance", "Second", "II",
				"https://www.docenti.unina.it/#!/professor/4d4152434f5041474e4f5a5a4950474e4d524337324331344638333944/programmi/shedainsegnamento"),
			mk("Financial Econometrics", "27382", 6, "DISES – LM Economics and Finance", "Second", "II",
				"https://www.docenti.unina.it/#!/professor/414e4e414c49534153434f474e414d49474c494f5343474e4c5338355234314638333953/programmi/shedainsegnamento"),
			mk("Mathematics for Economics and Finance", "25884", 12, "DISES – LM Economics and Finance", "Second", "I",
				"https://www.docenti.unina.it/#!/professor/414348494c4c45424153494c4542534c434c4c3538413231493239334f/programmi/shedainsegnamento"),
		},

		// Free-choice topics that overlap a sub-path's curricular content.
		Banned: catalog.BanRules{
			"PDS ITE/TS - CURRICULUM INFORMATION TECHNOLOGIES/TEXT AND SPEECH PROCESSING":  {"U5902": {}}, // Text Mining
			"PDS ITE/SV - CURRICULUM INFORMATION TECHNOLOGIES/SIGNAL AND VIDEO PROCESSING": {"U1644": {}}, // Information Theory
			"PDS ITE/AI - CURRICULUM INFORMATION TECHNOLOGIES/DATA SECURITY":               {"U2652": {}}, // Data Security
			"PDS ISY - CURRICULUM INTELLIGENT SYSTEMS":                                     {"U7219": {}}, // Computational Intelligence
		},

		Fixed: [3]catalog.Course{
			mk("ALTRE ATTIVITA", "12568", 6, "DIETI – LM Data Science", "Second", "second"),
			mk("TESI DI LAUREA", "U2848", 16, "DIETI – LM Data Science", "Second", "second"),
			mk("TIROCINIO/STAGE", "U4319", 8, "DIETI – LM Data Science", "Second", "second"),
		},
	}
}
