package tour

import "strings"

// Phrase keys for the fixed tour announcements.
const (
	PhraseArrived          = "arrived"
	PhraseTourStartWelcome = "tour_start_welcome"
	PhraseTourStartMove    = "tour_start_move"
	PhraseTourEnd          = "tour_end"
	PhraseQAIntro          = "qa_intro"
	PhraseQASilence        = "qa_silence"
	PhraseQAPass           = "qa_pass"
	PhraseQAMore           = "qa_more"
	PhrasePhotoIntro       = "photo_intro"
	PhrasePhotoPositioning = "photo_positioning"
	PhrasePhotoCountdown   = "photo_countdown"
	PhrasePhotoShot        = "photo_shot"
	PhrasePhotoSaved       = "photo_saved"
)

const phraseFallbackLang = "en"

// spotNamePlaceholder is substituted with the localized spot name in the
// "arrived" phrase.
const spotNamePlaceholder = "{spot_name}"

var phrases = map[string]map[string]string{
	PhraseArrived: {
		"ko": "{spot_name}에 도착했습니다.",
		"en": "We have arrived at {spot_name}.",
		"zh": "我们已经到达{spot_name}。",
		"ja": "{spot_name}に到着しました。",
		"fr": "Nous sommes arrivés à {spot_name}.",
		"es": "Hemos llegado a {spot_name}.",
		"vi": "Chúng ta đã đến {spot_name}.",
		"th": "เรามาถึง{spot_name}แล้ว",
	},
	PhraseTourStartWelcome: {
		"ko": "도리 투어에 오신 것을 환영합니다.",
		"en": "Welcome to the Dori tour.",
		"zh": "欢迎参加多里导览。",
		"ja": "ドリツアーへようこそ。",
		"fr": "Bienvenue à la visite guidée Dori.",
		"es": "Bienvenido al tour de Dori.",
		"vi": "Chào mừng đến với tour Dori.",
		"th": "ยินดีต้อนรับสู่ทัวร์ Dori",
	},
	PhraseTourStartMove: {
		"ko": "그럼 이제 첫 번째 장소로 이동하겠습니다.",
		"en": "Let's move to the first spot.",
		"zh": "那么现在让我们前往第一个地点。",
		"ja": "それでは、最初の場所へ移動しましょう。",
		"fr": "Maintenant, allons au premier lieu.",
		"es": "Ahora vamos al primer lugar.",
		"vi": "Bây giờ chúng ta sẽ di chuyển đến địa điểm đầu tiên.",
		"th": "ตอนนี้เราจะไปยังสถานที่แรกกัน",
	},
	PhraseTourEnd: {
		"ko": "모든 투어가 끝났습니다. 함께해주셔서 감사합니다!",
		"en": "The tour is finished. Thank you for joining!",
		"zh": "所有导览已结束。感谢您的参与！",
		"ja": "ツアーが終了しました。ご参加ありがとうございました！",
		"fr": "La visite est terminée. Merci de nous avoir rejoints !",
		"es": "El tour ha terminado. ¡Gracias por acompañarnos!",
		"vi": "Tour đã kết thúc. Cảm ơn bạn đã tham gia!",
		"th": "ทัวร์จบแล้ว ขอบคุณที่เข้าร่วมกับเรา!",
	},
	PhraseQAIntro: {
		"ko": "설명이 끝났습니다. 질문이 있으신가요? 있으시면 말씀해주세요. 없으시면 '패스'라고 말해주셔도 좋아요.",
		"en": "That concludes the explanation. Do you have any questions? If not, you can say 'pass'.",
		"zh": "说明已结束。您有什么问题吗？如果有请告诉我。如果没有，您可以说'跳过'。",
		"ja": "説明が終わりました。ご質問はありますか？ある場合はお知らせください。ない場合は「パス」と言っていただいても結構です。",
		"fr": "L'explication est terminée. Avez-vous des questions ? Si oui, dites-le moi. Sinon, vous pouvez dire 'passer'.",
		"es": "Eso concluye la explicación. ¿Tiene alguna pregunta? Si la tiene, dígamelo. Si no, puede decir 'pasar'.",
		"vi": "Phần giải thích đã kết thúc. Bạn có câu hỏi nào không? Nếu có, hãy cho tôi biết. Nếu không, bạn có thể nói 'bỏ qua'.",
		"th": "คำอธิบายจบแล้ว คุณมีคำถามไหม? ถ้ามีกรุณาบอกฉัน ถ้าไม่มีคุณสามารถพูดว่า 'ผ่าน' ได้",
	},
	PhraseQASilence: {
		"ko": "말씀이 없으셔서 다음 장소로 이동하겠습니다.",
		"en": "No response, so we'll move to the next spot.",
		"zh": "没有回应，我们将前往下一个地点。",
		"ja": "お返事がないので、次の場所へ移動します。",
		"fr": "Pas de réponse, nous allons donc passer au lieu suivant.",
		"es": "Sin respuesta, así que pasaremos al siguiente lugar.",
		"vi": "Không có phản hồi, nên chúng ta sẽ chuyển sang địa điểm tiếp theo.",
		"th": "ไม่มีคำตอบ เราจะไปยังสถานที่ถัดไป",
	},
	PhraseQAPass: {
		"ko": "알겠습니다. 다음 장소로 이동할게요.",
		"en": "Okay. We will move to the next spot.",
		"zh": "好的。我们将前往下一个地点。",
		"ja": "承知しました。次の場所へ移動します。",
		"fr": "D'accord. Nous allons passer au lieu suivant.",
		"es": "De acuerdo. Pasaremos al siguiente lugar.",
		"vi": "Được rồi. Chúng ta sẽ chuyển sang địa điểm tiếp theo.",
		"th": "เข้าใจแล้ว เราจะไปยังสถานที่ถัดไป",
	},
	PhraseQAMore: {
		"ko": "추가로 궁금하신 점 있으신가요?",
		"en": "Any other questions?",
		"zh": "还有其他问题吗？",
		"ja": "他にご質問はありますか？",
		"fr": "D'autres questions ?",
		"es": "¿Alguna otra pregunta?",
		"vi": "Bạn còn câu hỏi nào khác không?",
		"th": "มีคำถามอื่นอีกไหม?",
	},
	PhrasePhotoIntro: {
		"ko": "이곳은 사진이 아주 잘 나오는 장소예요. 사진을 찍어드리겠습니다!",
		"en": "This is a great photo spot. I'll take your picture!",
		"zh": "这里是一个绝佳的拍照地点。我来为您拍照！",
		"ja": "ここは写真がとてもよく撮れる場所です。写真を撮らせていただきます！",
		"fr": "C'est un excellent endroit pour prendre des photos. Je vais prendre votre photo !",
		"es": "Este es un gran lugar para fotos. ¡Le tomaré una foto!",
		"vi": "Đây là một địa điểm chụp ảnh tuyệt vời. Tôi sẽ chụp ảnh cho bạn!",
		"th": "ที่นี่เป็นจุดถ่ายภาพที่ดีมาก ฉันจะถ่ายรูปให้คุณ!",
	},
	PhrasePhotoPositioning: {
		"ko": "경회루가 잘 보이는 위치에 서주시면, 제가 적절한 위치로 이동해서 사진을 찍어드리겠습니다! 사진을 찍을 때는 저를 봐주세요!",
		"en": "If you stand in a spot with a good view of Gyeong-hoe-ru Pavilion, I'll move to take your picture so you're in the right spot! Please look at me when I take your picture!",
		"zh": "如果您站在能看到庆会楼的位置，我会移动到合适的位置为您拍照！拍照时请看着我！",
		"ja": "慶会楼がよく見える場所に立っていただければ、私が適切な位置に移動して写真を撮らせていただきます！写真を撮る時は私を見てください！",
		"fr": "Si vous vous placez à un endroit avec une bonne vue sur le pavillon Gyeong-hoe-ru, je me déplacerai pour prendre votre photo afin que vous soyez au bon endroit ! Regardez-moi quand je prends votre photo !",
		"es": "Si se coloca en un lugar con buena vista del pabellón Gyeong-hoe-ru, me moveré para tomar su foto para que esté en el lugar correcto. ¡Por favor, míreme cuando tome su foto!",
		"vi": "Nếu bạn đứng ở vị trí có thể nhìn thấy Gyeong-hoe-ru Pavilion rõ ràng, tôi sẽ di chuyển đến vị trí phù hợp để chụp ảnh cho bạn! Khi chụp ảnh, hãy nhìn vào tôi!",
		"th": "หากคุณยืนในตำแหน่งที่มองเห็นเกียงเฮรูได้ดี ฉันจะเคลื่อนที่ไปถ่ายรูปให้คุณในตำแหน่งที่เหมาะสม! กรุณามองมาที่ฉันเมื่อฉันถ่ายรูป!",
	},
	PhrasePhotoCountdown: {
		"ko": "5초 뒤에 사진을 찍겠습니다! 웃어주세요~",
		"en": "I'll take your picture in five seconds! Smile~",
		"zh": "五秒后我将为您拍照！请微笑~",
		"ja": "5秒後に写真を撮ります！笑顔で~",
		"fr": "Je vais prendre votre photo dans cinq secondes ! Souriez~",
		"es": "¡Le tomaré una foto en cinco segundos! Sonría~",
		"vi": "Tôi sẽ chụp ảnh trong năm giây nữa! Hãy cười lên~",
		"th": "ฉันจะถ่ายรูปในอีก 5 วินาที! ยิ้มหน่อย~",
	},
	PhrasePhotoShot: {
		"ko": "찰칵!",
		"en": "Click!",
		"zh": "咔嚓！",
		"ja": "カシャ！",
		"fr": "Clac !",
		"es": "¡Click!",
		"vi": "Cạch!",
		"th": "แชะ!",
	},
	PhrasePhotoSaved: {
		"ko": "사진이 저장되었습니다! 나중에 받아가실 수 있어요.",
		"en": "Photo saved! You can get it later.",
		"zh": "照片已保存！您稍后可以获取。",
		"ja": "写真が保存されました！後で受け取ることができます。",
		"fr": "Photo enregistrée ! Vous pourrez la récupérer plus tard.",
		"es": "¡Foto guardada! Puede obtenerla más tarde.",
		"vi": "Ảnh đã được lưu! Bạn có thể lấy sau.",
		"th": "บันทึกรูปภาพแล้ว! คุณสามารถรับได้ภายหลัง",
	},
}

// Phrase resolves a fixed announcement for (key, lang), falling back to
// English when the language has no entry. Unknown keys return "".
func Phrase(key string, lang string) string {
	table, ok := phrases[key]
	if !ok {
		return ""
	}
	if text, ok := table[lang]; ok {
		return text
	}
	return table[phraseFallbackLang]
}

// ArrivedPhrase renders the arrival announcement with the localized spot name.
func ArrivedPhrase(lang string, spotName string) string {
	return strings.ReplaceAll(Phrase(PhraseArrived, lang), spotNamePlaceholder, spotName)
}
