package seed

// The Gyeongbokgung route in walking order. The pavilion at the end is the
// photo spot.
var tourRoute = []spotSeed{
	{
		code: "gwanghwamun", nameEN: "Gwanghwamun Gate", orderNo: 1,
		names: map[string]string{"ko": "광화문", "ja": "光化門", "zh": "光化门"},
	},
	{
		code: "heungnyemun", nameEN: "Heungnyemun Gate", orderNo: 2,
		names: map[string]string{"ko": "흥례문", "ja": "興礼門", "zh": "兴礼门"},
	},
	{
		code: "geunjeongmun", nameEN: "Geunjeongmun Gate", orderNo: 3,
		names: map[string]string{"ko": "근정문", "ja": "勤政門", "zh": "勤政门"},
	},
	{
		code: "geunjeongjeon", nameEN: "Geunjeongjeon Hall", orderNo: 4,
		names: map[string]string{"ko": "근정전", "ja": "勤政殿", "zh": "勤政殿"},
	},
	{
		code: "sujeongjeon", nameEN: "Sujeongjeon Hall", orderNo: 5,
		names: map[string]string{"ko": "수정전", "ja": "修政殿", "zh": "修政殿"},
	},
	{
		code: "gyeonghoeru", nameEN: "Gyeonghoeru Pavilion", orderNo: 6,
		names:       map[string]string{"ko": "경회루", "ja": "慶会楼", "zh": "庆会楼"},
		isPhotoSpot: true,
	},
}

// English narration, one entry per paragraph. Other languages are translated
// live through the language bridge.
var spotScripts = map[string][]string{
	"gwanghwamun": {
		"This is Gwanghwamun Gate, the main southern gate of Gyeongbokgung Palace.",
		"You are now standing where major state ceremonies and royal processions once took place.",
	},
	"heungnyemun": {
		"This is Heungnyemun Gate, the second inner gate that leads you deeper into the palace grounds.",
	},
	"geunjeongmun": {
		"Geunjeongmun Gate leads directly to Geunjeongjeon, the main throne hall of the palace.",
	},
	"geunjeongjeon": {
		"Geunjeongjeon Hall is where the king held formal audiences and important state ceremonies.",
	},
	"sujeongjeon": {
		"Sujeongjeon Hall served as an important working space for high-ranking officials and royal secretaries.",
	},
	"gyeonghoeru": {
		"Gyeonghoeru Pavilion was used for royal banquets and diplomatic receptions, surrounded by a scenic pond.",
	},
}

var knowledgeDocs = []docSeed{
	{
		spotCode: "gwanghwamun",
		text: "Gwanghwamun is the main gate of Gyeongbokgung Palace. " +
			"It served as the symbolic entrance to the capital of the Joseon dynasty " +
			"and was used for important state ceremonies and the reception of foreign envoys.",
		sourceType: "extra", sourceRef: "wiki:gwanghwamun:overview",
		tags: []string{"history", "gate", "symbol"},
	},
	{
		spotCode: "gwanghwamun",
		text: "Gwanghwamun has been destroyed and rebuilt multiple times due to wars and occupations. " +
			"The current structure was restored in 2010 using traditional wooden construction methods.",
		sourceType: "extra", sourceRef: "wiki:gwanghwamun:restoration",
		tags: []string{"history", "restoration"},
	},
	{
		spotCode: "gwanghwamun",
		text: "During the Korean War, Gwanghwamun Gate was reduced to its framework by bombing and was " +
			"later reconstructed in concrete in the 1960s. Restoration efforts during this period were only partial and fragmentary.",
		sourceType: "extra", sourceRef: "qa:gyeongbokgung:korean_war",
		tags: []string{"korean war", "gwanghwamun", "restoration", "history"},
	},
	{
		spotCode:   "gwanghwamun",
		text:       "In 1426 (the 8th year of King Sejong), Gwanghwamun, Geonchunmun, and Yeongchumun Gates were constructed.",
		sourceType: "extra", sourceRef: "qa:timeline:1426",
		tags: []string{"timeline", "king sejong", "construction"},
	},
	{
		spotCode: "heungnyemun",
		text: "Heungnyemun is the central gate of Gyeongbokgung Palace. 'Heungnye' means 'to raise up rites.' " +
			"Originally called 'Hongnyemun,' it was renamed to its current name in 1867 (the 4th year of King Gojong's reign) " +
			"during the reconstruction of Gyeongbokgung Palace.",
		sourceType: "extra", sourceRef: "wiki:heungnyemun:overview",
		tags: []string{"gate", "history", "naming"},
	},
	{
		spotCode: "heungnyemun",
		text: "Heungnyemun was demolished during the Japanese colonial period to make way for the construction of " +
			"the Government-General of Korea building. Following the demolition of the building in 1996, it was restored in 2001.",
		sourceType: "extra", sourceRef: "wiki:heungnyemun:restoration",
		tags: []string{"restoration", "history", "colonial period"},
	},
	{
		spotCode: "heungnyemun",
		text: "In the center of the Heungnyemun area, the Geumcheon Stream, a stream flowing from Baekaksan Mountain, flows, " +
			"and over it flows the Yeongjegyo Bridge. Yeongjegyo Bridge, named after King Sejong, survived the Imjin War " +
			"without significant damage and was restored in 1867 during the reconstruction of Gyeongbokgung Palace.",
		sourceType: "extra", sourceRef: "wiki:heungnyemun:yeongjegyo",
		tags: []string{"bridge", "stream", "history", "architecture"},
	},
	{
		spotCode: "geunjeongmun",
		text: "Geunjeongmun Gate is the main gate of Geunjeongjeon Hall. It features a hipped roof with three bays " +
			"at the front and two bays at the side. It is the only main gate of a palace main hall with a two-story structure.",
		sourceType: "extra", sourceRef: "wiki:geunjeongmun:architecture",
		tags: []string{"gate", "architecture", "structure"},
	},
	{
		spotCode: "geunjeongmun",
		text: "Geunjeongmun was used for royal funerals and coronations, and the successors to the throne were crowned here, " +
			"including Danjong, Seongjong, and Myeongjong. Geunjeongmun, including its corridors, was designated a Treasure in 1985.",
		sourceType: "extra", sourceRef: "wiki:geunjeongmun:history",
		tags: []string{"ceremony", "coronation", "history", "treasure"},
	},
	{
		spotCode: "geunjeongjeon",
		text: "Geunjeongjeon Hall is the main hall of Gyeongbokgung Palace. It was used for important state events, " +
			"such as the king's coronation, ceremonies for court officials, receptions of foreign envoys, and royal banquets. " +
			"The name 'Geunjeong' in Geunjeongjeon means 'to diligently govern the world.' " +
			"It is the largest and most formal building in the palace, occupying the largest area.",
		sourceType: "extra", sourceRef: "wiki:geunjeongjeon:overview",
		tags: []string{"throne hall", "ceremony", "national events", "meaning"},
	},
	{
		spotCode: "geunjeongjeon",
		text: "The interior floor is paved with brick, and the royal throne is located in the center of the north. " +
			"Behind the throne is the 'Ilwol Obongdo,' a painting depicting the sun, moon, and five peaks, symbolizing " +
			"royal authority. The ceiling is adorned with carvings of seven dragons.",
		sourceType: "extra", sourceRef: "wiki:geunjeongjeon:interior",
		tags: []string{"interior", "throne", "painting", "symbolism", "dragons"},
	},
	{
		spotCode: "geunjeongjeon",
		text: "King Jeongjong, Sejong, Sejo, Jungjong, and Seonjo ascended the throne at Geunjeongjeon Hall, " +
			"and it was designated a National Treasure in 1985.",
		sourceType: "extra", sourceRef: "wiki:geunjeongjeon:history",
		tags: []string{"history", "kings", "national treasure"},
	},
	{
		spotCode: "geunjeongjeon",
		text: "Meaning 'May the new dynasty enjoy great fortune and prosperity,' Gyeongbokgung Palace was the main " +
			"royal palace (beopgung) of the Joseon Dynasty. It was the first palace built after the founding of Joseon " +
			"in 1392, following the relocation of the capital to Hanyang in 1394. " +
			"Construction was completed in 1395 (the 4th year of King Taejo).",
		sourceType: "extra", sourceRef: "qa:gyeongbokgung:overview",
		tags: []string{"overview", "history", "founding", "king taejo"},
	},
	{
		spotCode: "geunjeongjeon",
		text: "When Gyeongbokgung was built, the palace buildings were laid out in strict formality along a straight " +
			"central axis. Starting from the main gate, Gwanghwamun, the sequence of major buildings was Heungnyemun, " +
			"Geunjeongmun, Geunjeongjeon, Sajeongjeon, Gangnyeongjeon, and Gyotaejeon.",
		sourceType: "extra", sourceRef: "qa:gyeongbokgung:layout",
		tags: []string{"architecture", "layout", "structure"},
	},
	{
		spotCode: "geunjeongjeon",
		text: "In 1592 (the 25th year of King Seonjo), all palaces in Hanyang, including Gyeongbokgung, were destroyed " +
			"by fire during the Imjin War. After being burned down, the palace site remained empty for approximately 270 years.",
		sourceType: "extra", sourceRef: "qa:gyeongbokgung:imjin_war",
		tags: []string{"imjin war", "destruction", "history", "king seonjo"},
	},
	{
		spotCode: "geunjeongjeon",
		text: "Reconstruction of the palace began in 1865 (the 2nd year of King Gojong) and was completed in 1867 " +
			"(the 4th year of King Gojong). Later, structures such as Hyangwonjeong Pavilion, Jibokjae, and Geoncheonggung " +
			"were built in the northern area of the palace, forming the layout of Gyeongbokgung as it is known today.",
		sourceType: "extra", sourceRef: "qa:gyeongbokgung:reconstruction",
		tags: []string{"reconstruction", "king gojong", "history", "architecture"},
	},
	{
		spotCode: "geunjeongjeon",
		text: "Although exact numbers are unknown, it is estimated that around 3,000 people lived or worked in " +
			"Gyeongbokgung during the Joseon Dynasty, including royal family members, officials, palace women, eunuchs, " +
			"soldiers, cooks, and physicians.",
		sourceType: "extra", sourceRef: "qa:faq:palace_population",
		tags: []string{"faq", "population", "joseon dynasty", "statistics"},
	},
	{
		spotCode: "geunjeongjeon",
		text: "The name 'Gyeongbokgung' comes from a verse in the Book of Songs, meaning 'May you enjoy great and " +
			"everlasting fortune,' expressing hopes for the prosperity of the new dynasty.",
		sourceType: "extra", sourceRef: "qa:faq:gyeongbokgung_meaning",
		tags: []string{"faq", "meaning", "name", "etymology"},
	},
	{
		spotCode: "sujeongjeon",
		text: "The 'Sujeong' in Sujeongjeon Hall means 'to conduct politics well.' This building served as a side hall " +
			"during the reign of King Gojong. It wasn't present when Gyeongbokgung Palace was first built, but was added " +
			"during the reconstruction of the palace.",
		sourceType: "extra", sourceRef: "wiki:sujeongjeon:overview",
		tags: []string{"meaning", "history", "construction", "king gojong"},
	},
	{
		spotCode: "sujeongjeon",
		text: "Notably, during the early Joseon Dynasty, the area around Sujeongjeon Hall was home to the Jiphyeonjeon " +
			"Hall, the birthplace of the Hunminjeongeum (Korean alphabet) during the reign of King Sejong.",
		sourceType: "extra", sourceRef: "wiki:sujeongjeon:jiphyeonjeon",
		tags: []string{"jiphyeonjeon", "hunminjeongeum", "king sejong", "korean alphabet"},
	},
	{
		spotCode:   "sujeongjeon",
		text:       "Sujeongjeon Hall was designated a Treasure in 2012.",
		sourceType: "extra", sourceRef: "wiki:sujeongjeon:designation",
		tags: []string{"treasure", "designation"},
	},
	{
		spotCode: "gyeonghoeru",
		text: "The 'Gyeonghoe' in Gyeonghoeru Pavilion means 'celebrated banquet.' This pavilion is located within a " +
			"pond to the west of the main living quarters of Gyeongbokgung Palace. Gyeonghoeru Pavilion was where the " +
			"king held grand banquets with his subjects and entertained foreign envoys.",
		sourceType: "extra", sourceRef: "wiki:gyeonghoeru:overview",
		tags: []string{"meaning", "banquet", "location", "diplomacy"},
	},
	{
		spotCode: "gyeonghoeru",
		text: "Initially a small pavilion, it was rebuilt in 1412 (the 12th year of King Taejong's reign) by digging " +
			"a large pond and expanding it to its current scale. It was repaired during the reigns of King Seongjong " +
			"and King Yeonsangun, but was destroyed during the Japanese invasions of Korea.",
		sourceType: "extra", sourceRef: "wiki:gyeonghoeru:construction",
		tags: []string{"construction", "history", "king taejong", "imjin war"},
	},
	{
		spotCode: "gyeonghoeru",
		text: "The first floor of Gyeonghoeru consists of 48 tall stone pillars (24 round and 24 square). " +
			"A wooden floor was laid on the second floor, serving as a banquet hall.",
		sourceType: "extra", sourceRef: "wiki:gyeonghoeru:architecture",
		tags: []string{"architecture", "pillars", "structure", "banquet hall"},
	},
	{
		spotCode: "gyeonghoeru",
		text: "A bronze dragon was discovered in 1997 during cleaning of Gyeonghoeru Pond. It was placed there to " +
			"prevent fire, as dragons were believed to control water and rain.",
		sourceType: "extra", sourceRef: "qa:faq:gyeonghoeru_dragon",
		tags: []string{"faq", "gyeonghoeru", "dragon", "symbolism"},
	},
	{
		spotCode:   "gyeonghoeru",
		text:       "Gyeonghoeru was designated a National Treasure in 1985.",
		sourceType: "extra", sourceRef: "wiki:gyeonghoeru:designation",
		tags: []string{"national treasure", "designation"},
	},
}
